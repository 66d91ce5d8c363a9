package gqlpager

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm/clause"
)

// seekTerm is a single comparison "column operator value".
type seekTerm struct {
	column   string
	operator Operator
	value    any
	kind     ValueKind
}

// seekFilter selects the rows strictly past a keyset position. It is a
// disjunction of conjunctions: for the position
//
//	[(C1, O1, V1), (C2, O2, V2) ... (Cn, On, Vn)]
//
// the filter is
//
//	(C1 O1 V1) OR (C1 = V1 AND C2 O2 V2) OR ... OR (C1 = V1 AND ... AND Cn On Vn)
type seekFilter [][]seekTerm

func newSeekFilter(elements []CursorElement) seekFilter {
	filter := make(seekFilter, 0, len(elements))
	for i, element := range elements {
		terms := make([]seekTerm, 0, i+1)
		for _, previous := range elements[:i] {
			terms = append(terms, seekTerm{column: previous.Column, operator: operatorEq, value: previous.Value, kind: previous.Kind})
		}

		filter = append(filter, append(terms, seekTerm{column: element.Column, operator: element.Operator, value: element.Value, kind: element.Kind}))
	}

	return filter
}

// expression renders the filter as a gorm WHERE expression. An empty filter
// renders nil.
func (f seekFilter) expression() clause.Expression {
	alternatives := make([]clause.Expression, 0, len(f))
	for _, terms := range f {
		if len(terms) == 0 {
			continue
		}

		conjunction := make([]clause.Expression, 0, len(terms))
		for _, term := range terms {
			sql, value := term.sql()
			conjunction = append(conjunction, clause.Expr{SQL: sql, Vars: []any{value}})
		}

		alternatives = append(alternatives, clause.And(conjunction...))
	}

	switch len(alternatives) {
	case 0:
		return nil
	case 1:
		return alternatives[0]
	default:
		return clause.Or(alternatives...)
	}
}

// sql renders the filter as a standalone SQL condition with "?" placeholders.
//
// Example: for the position [(id, <, 10), (name, <, "abc")]
//
//	("((id < ?) OR (id = ? AND name < ?))", [10, 10, "abc"])
func (f seekFilter) sql() (string, []driver.Value) {
	alternatives := make([]string, 0, len(f))
	var values []driver.Value

	for _, terms := range f {
		if len(terms) == 0 {
			continue
		}

		conjunction := make([]string, 0, len(terms))
		for _, term := range terms {
			sql, value := term.sql()
			conjunction = append(conjunction, sql)
			values = append(values, value)
		}

		alternatives = append(alternatives, "("+strings.Join(conjunction, " AND ")+")")
	}

	if len(alternatives) == 0 {
		return "TRUE", nil
	}

	return "(" + strings.Join(alternatives, " OR ") + ")", values
}

func (t seekTerm) sql() (string, driver.Value) {
	return fmt.Sprintf("%s %s ?", t.column, t.operator), bindValue(t.value, t.kind)
}

// bindValue turns a decoded position value back into a query argument.
// Numbers bind as int64 when integral, uint64 past the int64 range and
// float64 otherwise. Text is parsed as a timestamp only when kind says so.
func bindValue(v any, kind ValueKind) any {
	switch vt := v.(type) {
	case json.Number:
		if i, err := vt.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(vt.String(), 10, 64); err == nil {
			return u
		}
		if f, err := vt.Float64(); err == nil {
			return f
		}
		return vt.String()
	case string:
		if kind != ValueKindTime {
			return v
		}

		var ts time.Time
		if err := ts.UnmarshalText([]byte(vt)); err != nil {
			return v
		}
		return ts
	default:
		return v
	}
}
