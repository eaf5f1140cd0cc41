// Package querybuilder assembles parameterized SQL with '?' bind markers.
// Callers rebind the output for their driver (sqlx.DB.Rebind).
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition is one predicate of a WHERE clause. Conditions are ANDed.
type Condition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return Condition{column: column, value: value}
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Join adds an inner join, e.g. Join("teams t", "t.id = tp.team_id").
func (b *SelectBuilder) Join(table, on string) *SelectBuilder {
	b.joins = append(b.joins, table+" ON "+on)
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, columns...)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	parts := []string{"SELECT " + strings.Join(b.columns, ", "), "FROM " + b.table}
	for _, join := range b.joins {
		parts = append(parts, "JOIN "+join)
	}

	args := make([]any, 0, len(b.where))
	if len(b.where) > 0 {
		predicates := make([]string, 0, len(b.where))
		for _, c := range b.where {
			predicates = append(predicates, c.column+" = ?")
			args = append(args, c.value)
		}
		parts = append(parts, "WHERE "+strings.Join(predicates, " AND "))
	}
	if len(b.groupBy) > 0 {
		parts = append(parts, "GROUP BY "+strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		parts = append(parts, "ORDER BY "+strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		parts = append(parts, "LIMIT "+strconv.Itoa(b.limit))
	}

	return strings.Join(parts, " "), args, nil
}
