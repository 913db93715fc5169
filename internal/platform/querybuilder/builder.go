// Package querybuilder renders the small set of postgres statements the
// repositories issue, numbering placeholders as $1, $2, ...
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errNoTable      = errors.New("table is required")
	errUnsafeDelete = errors.New("delete without conditions is not allowed")
)

// params accumulates bound arguments and hands out their placeholders.
type params struct {
	args []any
}

func (p *params) bind(value any) string {
	p.args = append(p.args, value)
	return "$" + strconv.Itoa(len(p.args))
}

// Condition is one predicate of a WHERE clause. Conditions are ANDed.
type Condition struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition {
	return Condition{column: column, op: "=", value: value}
}

func Ne(column string, value any) Condition {
	return Condition{column: column, op: "<>", value: value}
}

func writeWhere(sb *strings.Builder, p *params, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(sb, "%s %s %s", c.column, c.op, p.bind(c.value))
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, columns...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if b.table == "" {
		return "", nil, fmt.Errorf("select: %w", errNoTable)
	}
	columns := "*"
	if len(b.columns) > 0 {
		columns = strings.Join(b.columns, ", ")
	}

	var (
		sb strings.Builder
		p  params
	)
	fmt.Fprintf(&sb, "SELECT %s FROM %s", columns, b.table)
	writeWhere(&sb, &p, b.where)
	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY " + strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		sb.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}

	return sb.String(), p.args, nil
}

type assignment struct {
	column string
	value  any
	raw    string
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// SetExpr assigns a literal SQL expression such as NOW().
func (b *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, raw: expr})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if b.table == "" {
		return "", nil, fmt.Errorf("update: %w", errNoTable)
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update %s: no columns to set", b.table)
	}

	var (
		sb strings.Builder
		p  params
	)
	sb.WriteString("UPDATE " + b.table + " SET ")
	for i, s := range b.sets {
		if i > 0 {
			sb.WriteString(", ")
		}
		value := s.raw
		if value == "" {
			value = p.bind(s.value)
		}
		sb.WriteString(s.column + " = " + value)
	}
	writeWhere(&sb, &p, b.where)

	return sb.String(), p.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if b.table == "" {
		return "", nil, fmt.Errorf("delete: %w", errNoTable)
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete from %s: %w", b.table, errUnsafeDelete)
	}

	var (
		sb strings.Builder
		p  params
	)
	sb.WriteString("DELETE FROM " + b.table)
	writeWhere(&sb, &p, b.where)

	return sb.String(), p.args, nil
}
