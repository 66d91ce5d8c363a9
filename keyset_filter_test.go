package gqlpager

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func Test_newSeekFilter(t *testing.T) {
	filter := newSeekFilter([]CursorElement{
		{Column: "created_at", Value: "2024-01-01T00:00:00Z", Operator: OperatorLT, Kind: ValueKindTime},
		{Column: "name", Value: "bob", Operator: OperatorGT},
		{Column: "id", Value: 4, Operator: OperatorGT},
	})

	ts := "2024-01-01T00:00:00Z"
	require.Equal(t, seekFilter{
		{{"created_at", OperatorLT, ts, ValueKindTime}},
		{{"created_at", operatorEq, ts, ValueKindTime}, {"name", OperatorGT, "bob", ValueKindPlain}},
		{{"created_at", operatorEq, ts, ValueKindTime}, {"name", operatorEq, "bob", ValueKindPlain}, {"id", OperatorGT, 4, ValueKindPlain}},
	}, filter)

	assert.Empty(t, newSeekFilter(nil))
}

func Test_seekFilter_sql(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	nowText, _ := now.MarshalText()

	tests := []struct {
		name     string
		elements []CursorElement
		wantSQL  string
		wantVals []driver.Value
	}{
		{
			name:     "no position",
			elements: nil,
			wantSQL:  "TRUE",
		},
		{
			name:     "single column",
			elements: []CursorElement{{Column: "id", Value: 10, Operator: OperatorLT}},
			wantSQL:  "((id < ?))",
			wantVals: []driver.Value{10},
		},
		{
			name: "two columns",
			elements: []CursorElement{
				{Column: "id", Value: 10, Operator: OperatorLT},
				{Column: "name", Value: "abc", Operator: OperatorLT},
			},
			wantSQL:  "((id < ?) OR (id = ? AND name < ?))",
			wantVals: []driver.Value{10, 10, "abc"},
		},
		{
			name: "tagged timestamps are restored from text",
			elements: []CursorElement{
				{Column: "created_at", Value: string(nowText), Operator: OperatorGT, Kind: ValueKindTime},
				{Column: "id", Value: json.Number("1"), Operator: OperatorGT},
			},
			wantSQL:  "((created_at > ?) OR (created_at = ? AND id > ?))",
			wantVals: []driver.Value{now, now, int64(1)},
		},
		{
			name: "untagged timestamp text stays text",
			elements: []CursorElement{
				{Column: "name", Value: "2024-01-01T00:00:00Z", Operator: OperatorGT},
				{Column: "id", Value: json.Number("2"), Operator: OperatorGT},
			},
			wantSQL:  "((name > ?) OR (name = ? AND id > ?))",
			wantVals: []driver.Value{"2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotVals := newSeekFilter(tt.elements).sql()
			assert.Equal(t, tt.wantSQL, gotSQL)
			assert.Equal(t, tt.wantVals, gotVals)

			cursorSQL, cursorVals := NewDefaultCursor(tt.elements...).ToSQL()
			assert.Equal(t, gotSQL, cursorSQL)
			assert.Equal(t, gotVals, cursorVals)
		})
	}
}

func Test_seekFilter_expression(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		assert.Nil(t, seekFilter{}.expression())
		assert.Nil(t, seekFilter{{}}.expression())
	})

	t.Run("single column is a plain expression", func(t *testing.T) {
		expr := newSeekFilter([]CursorElement{{Column: "id", Value: 5, Operator: OperatorGT}}).expression()
		assert.Equal(t, clause.Expr{SQL: "id > ?", Vars: []any{5}}, expr)
	})

	t.Run("several columns are alternatives", func(t *testing.T) {
		expr := newSeekFilter([]CursorElement{
			{Column: "id", Value: 10, Operator: OperatorGT},
			{Column: "created_at", Value: "2023-01-01", Operator: OperatorGT},
		}).expression()

		or, ok := expr.(clause.OrConditions)
		require.True(t, ok, "got %T", expr)
		require.Len(t, or.Exprs, 2)
		assert.Equal(t, clause.Expr{SQL: "id > ?", Vars: []any{10}}, or.Exprs[0])

		and, ok := or.Exprs[1].(clause.AndConditions)
		require.True(t, ok, "got %T", or.Exprs[1])
		assert.Equal(t, []clause.Expression{
			clause.Expr{SQL: "id = ?", Vars: []any{10}},
			clause.Expr{SQL: "created_at > ?", Vars: []any{"2023-01-01"}},
		}, and.Exprs)
	})
}

func Test_bindValue(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	nowText, _ := now.MarshalText()

	tests := []struct {
		in   any
		kind ValueKind
		want any
	}{
		{string(nowText), ValueKindTime, now},
		{string(nowText), ValueKindPlain, string(nowText)},
		{"abc", ValueKindTime, "abc"},
		{"2023-01-01", ValueKindPlain, "2023-01-01"},
		{json.Number("42"), ValueKindPlain, int64(42)},
		{json.Number("9007199254740993"), ValueKindPlain, int64(9007199254740993)},
		{json.Number("18446744073709551615"), ValueKindPlain, uint64(18446744073709551615)},
		{json.Number("99.5"), ValueKindPlain, 99.5},
		{json.Number("-1e3"), ValueKindPlain, -1000.0},
		{42, ValueKindPlain, 42},
		{now, ValueKindTime, now},
		{true, ValueKindPlain, true},
		{nil, ValueKindPlain, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T %v %s", tt.in, tt.in, tt.kind), func(t *testing.T) {
			got := bindValue(tt.in, tt.kind)
			if want, ok := tt.want.(time.Time); ok {
				require.IsType(t, time.Time{}, got)
				assert.True(t, want.Equal(got.(time.Time)))
				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
