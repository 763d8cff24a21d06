// Package query builds parameterized PostgreSQL SELECT statements against a
// ProjectionMap.
package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     []string
	defaultSort string
}

// NewBuilder creates a Builder for the given projection. The optional
// defaultSort field is used when no explicit ordering is set.
func NewBuilder(projection *ProjectionMap, defaultSort ...string) *Builder {
	b := &Builder{
		projection: projection,
		conditions: make([]condition, 0),
	}
	if len(defaultSort) > 0 {
		b.defaultSort = defaultSort[0]
	}
	return b
}

// BuildList returns an unbounded SELECT with the current conditions and ordering.
func (b *Builder) BuildList() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildFirst returns a SELECT limited to the first matching row.
func (b *Builder) BuildFirst() (string, []any) {
	sql, args := b.BuildList()
	return sql + " LIMIT 1", args
}

// BuildSingle returns a SELECT query for a single record matched on idField.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	col := b.projection.Column(idField)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		col,
	)
	return sql, []any{id}
}

// OrderBy appends a sort field. Calls accumulate in order.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if field == "" {
		return b
	}
	dir := "ASC"
	if descending {
		dir = "DESC"
	}
	b.orderBy = append(b.orderBy, fmt.Sprintf("%s %s", b.projection.Column(field), dir))
	return b
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s = $%%d", col),
		args:   []any{value},
	})
	return b
}

// WhereTrue adds a boolean column condition.
func (b *Builder) WhereTrue(field string) *Builder {
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s IS TRUE", b.projection.Column(field)),
	})
	return b
}

// WhereIn adds an IN condition for multiple values. Empty slices are ignored.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	col := b.projection.Column(field)
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = "$%d"
	}
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ", ")),
		args:   values,
	})
	return b
}

func (b *Builder) buildOrderBy() string {
	if len(b.orderBy) > 0 {
		return " ORDER BY " + strings.Join(b.orderBy, ", ")
	}
	if b.defaultSort == "" {
		return ""
	}
	return fmt.Sprintf(" ORDER BY %s ASC", b.projection.Column(b.defaultSort))
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
