package gqlpager

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// PseudoCursor is an OFFSET position. OffsetPaginator issues it for
// orderings without a unique column, where keyset positions cannot be used.
type PseudoCursor struct {
	offset int
}

func NewPseudoCursor(offset int) *PseudoCursor {
	return &PseudoCursor{offset: offset}
}

// OffsetCursor returns the position of the item at the zero based index.
// The position counts the items up to and including the item, so resuming
// after it starts at that offset.
func OffsetCursor(index int) *PseudoCursor {
	return NewPseudoCursor(index + 1)
}

// DecodePseudoCursor parses a position produced by PseudoCursor.String. An
// empty string decodes to a nil cursor.
func DecodePseudoCursor(marker string) (*PseudoCursor, error) {
	if marker == "" {
		return nil, nil
	}

	raw, err := _encoder.DecodeString(marker)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded pseudo cursor: %w", err)
	}

	offset, err := strconv.Atoi(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode pseudo cursor offset value: %w", err)
	}

	return NewPseudoCursor(offset), nil
}

// String - implements fmt.Stringer. Offset zero renders as an empty string.
func (p *PseudoCursor) String() string {
	if p.IsEmpty() {
		return ""
	}

	return _encoder.EncodeToString(strconv.AppendInt(nil, int64(p.offset), 10))
}

// IsEmpty - implements Cursor.
func (p *PseudoCursor) IsEmpty() bool {
	return p.GetOffset() == 0
}

// GetOffset returns the number of rows the position skips.
func (p *PseudoCursor) GetOffset() int {
	if p == nil {
		return 0
	}

	return p.offset
}

// Apply - implements Cursor.
func (p *PseudoCursor) Apply(db *gorm.DB) *gorm.DB {
	if p.IsEmpty() {
		return db
	}

	return db.Offset(p.offset)
}

// validate - implements Cursor. Any offset fits any sort.
func (p *PseudoCursor) validate(Orderings) error {
	return nil
}

var (
	_ Cursor       = (*PseudoCursor)(nil)
	_ fmt.Stringer = (*PseudoCursor)(nil)
)
