package round

import "fmt"

// Round is a single scoring event inside a series.
type Round struct {
	ID       int64
	SeriesID int64
	Name     string
}

func (r Round) Validate() error {
	if r.SeriesID <= 0 {
		return fmt.Errorf("round series id is required")
	}
	return nil
}
