package gqlpager

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// DefaultCursor is a keyset position: the values of the ordering columns of
// one row, each paired with the operator selecting the rows past it.
//
//	[(C1, O1, V1), (C2, O2, V2) ... (Cn, On, Vn)]
//
// An empty cursor is the start of the dataset.
//
// IMPORTANT:
// The last column MUST be unique, otherwise rows sharing a position are lost
// between pages.
type DefaultCursor struct {
	elements []CursorElement
}

func NewDefaultCursor(elements ...CursorElement) *DefaultCursor {
	return &DefaultCursor{elements: elements}
}

// CursorElement is one column of a keyset position. Decoded numbers are
// json.Number values.
type CursorElement struct {
	Column   string    `json:"c"`
	Value    any       `json:"v"`
	Operator Operator  `json:"o"`
	Kind     ValueKind `json:"k,omitempty"`
}

// ValueKind tags position values whose type JSON does not keep.
type ValueKind string

const (
	ValueKindPlain ValueKind = ""
	ValueKindTime  ValueKind = "time"
)

func (k ValueKind) Valid() bool {
	return k == ValueKindPlain || k == ValueKindTime
}

func kindOf(value any) ValueKind {
	switch v := value.(type) {
	case time.Time:
		return ValueKindTime
	case *time.Time:
		if v != nil {
			return ValueKindTime
		}
	}

	return ValueKindPlain
}

// DecodeCursor parses a position produced by DefaultCursor.String. An empty
// string decodes to a nil cursor.
func DecodeCursor(marker string) (*DefaultCursor, error) {
	if marker == "" {
		return nil, nil
	}

	raw, err := _encoder.DecodeString(marker)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded cursor: %w", err)
	}

	var elements []CursorElement
	if err = _json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json encoded cursor: %w", err)
	}

	return &DefaultCursor{elements: elements}, nil
}

// String - implements fmt.Stringer.
func (c *DefaultCursor) String() string {
	if c.IsEmpty() {
		return ""
	}

	raw, err := _json.Marshal(c.elements)
	if err != nil {
		panic(fmt.Errorf("cannot marshal cursor value: %w", err))
	}

	return _encoder.EncodeToString(raw)
}

// IsEmpty - implements Cursor.
func (c *DefaultCursor) IsEmpty() bool {
	return c == nil || len(c.elements) == 0
}

// GetElements returns the position columns. They are not a filter on their
// own; see Apply.
func (c *DefaultCursor) GetElements() []CursorElement {
	if c == nil {
		return nil
	}

	return c.elements
}

// Apply - implements Cursor. Restricts the query to the rows past the position.
func (c *DefaultCursor) Apply(db *gorm.DB) *gorm.DB {
	if c.IsEmpty() {
		return db
	}

	return db.Clauses(newSeekFilter(c.elements).expression())
}

// ToSQL renders the filter Apply adds as a standalone SQL condition.
//
//	sql, values := c.ToSQL()
//	db.Raw("SELECT * FROM users WHERE "+sql, values...)
func (c *DefaultCursor) ToSQL() (string, []driver.Value) {
	return newSeekFilter(c.GetElements()).sql()
}

// Inverted returns the cursor selecting the rows on the other side of the
// same position.
func (c *DefaultCursor) Inverted() *DefaultCursor {
	if c.IsEmpty() {
		return nil
	}

	return &DefaultCursor{
		elements: lo.Map(c.elements, func(e CursorElement, _ int) CursorElement {
			return CursorElement{Column: e.Column, Value: e.Value, Operator: e.Operator.Invert(), Kind: e.Kind}
		}),
	}
}

// validate - implements Cursor. The position must name exactly the sorted
// columns, in order, with the operator matching each direction.
func (c *DefaultCursor) validate(sort Orderings) error {
	if c.IsEmpty() {
		return nil
	}

	if len(c.elements) != len(sort) {
		return fmt.Errorf("cursor column number mismatch")
	}

	for i, e := range c.elements {
		switch {
		case e.Column != sort[i].Column:
			return fmt.Errorf("unexpected cursor column '%s'", e.Column)
		case !e.Operator.Valid():
			return fmt.Errorf("invalid cursor operator '%s'", e.Operator)
		case !e.Kind.Valid():
			return fmt.Errorf("invalid cursor value kind '%s'", e.Kind)
		case e.Operator.ForOrdering() != sort[i].Direction:
			return fmt.Errorf("unexpected cursor operator '%s'", e.Operator)
		}
	}

	return nil
}

var (
	_ Cursor       = (*DefaultCursor)(nil)
	_ fmt.Stringer = (*DefaultCursor)(nil)
)

// Getters maps ordering columns to functions reading the column value from an
// item. Every column of every ordering needs a getter.
//
//	gqlpager.Getters[models.User]{
//		"id":         func(u models.User) any { return u.ID },
//		"created_at": func(u models.User) any { return u.CreatedAt },
//	}
type Getters[T any] map[string]func(T) any

// KeysetCursor builds the position of item in sort.
func KeysetCursor[T any](sort Orderings, getters Getters[T], item T) (*DefaultCursor, error) {
	elements := make([]CursorElement, 0, len(sort))
	for _, orderBy := range sort {
		getter, ok := getters[orderBy.Column]
		if !ok {
			return nil, fmt.Errorf("cannot find getter for column '%s' met in ordering", orderBy.Column)
		}

		value := getter(item)
		elements = append(elements, CursorElement{
			Column:   orderBy.Column,
			Value:    value,
			Operator: orderBy.Direction.ForOperator(),
			Kind:     kindOf(value),
		})
	}

	return &DefaultCursor{elements: elements}, nil
}
