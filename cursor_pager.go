package gqlpager

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// CursorPager restricts a gorm query to one window of rows: the rows past a
// cursor, in a sort, up to a limit.
//
// Usage:
//
//	pager := NewCursorPager[*DefaultCursor]().
//		WithCursor(after).
//		WithSubstitutedSort(sort...).
//		WithLimit(10).
//		WithLookahead()
//	rows, more, err := FetchPage[User](db, pager)
type CursorPager[CursorType Cursor] struct {
	cursor    CursorType
	sort      Orderings
	limit     int
	maxLimit  int
	lookahead bool
}

func NewCursorPager[CursorType Cursor]() *CursorPager[CursorType] {
	return new(CursorPager[CursorType])
}

// WithLookahead reads one row past the limit to tell whether the window is
// the last one.
func (c *CursorPager[CursorType]) WithLookahead() *CursorPager[CursorType] {
	c = c.orNew()
	c.lookahead = true

	return c
}

// WithMaxLimit bounds the limit set by WithLimit. Call it before WithLimit.
// Non-positive values fall back to MaxLimit.
func (c *CursorPager[CursorType]) WithMaxLimit(maxLimit int) *CursorPager[CursorType] {
	c = c.orNew()
	c.maxLimit = maxLimit

	return c
}

// WithLimit sets the window size, normalized with NormalizeLimitMax.
func (c *CursorPager[CursorType]) WithLimit(limit int) *CursorPager[CursorType] {
	c = c.orNew()
	c.limit = NormalizeLimitMax(limit, c.getMaxLimit())

	return c
}

// WithCursor sets the position the window starts past.
func (c *CursorPager[CursorType]) WithCursor(cursor CursorType) *CursorPager[CursorType] {
	c = c.orNew()
	c.cursor = cursor

	return c
}

// WithSubstitutedSort replaces the sort.
func (c *CursorPager[CursorType]) WithSubstitutedSort(orderBy ...OrderBy) *CursorPager[CursorType] {
	c = c.orNew()
	c.sort = nil

	return c.WithSort(orderBy...)
}

// WithSort appends columns to the sort. A column already sorted by moves to
// the end with its new direction.
func (c *CursorPager[CursorType]) WithSort(orderBy ...OrderBy) *CursorPager[CursorType] {
	c = c.orNew()
	for _, o := range orderBy {
		c.sort = slices.DeleteFunc(c.sort, func(sorted OrderBy) bool {
			return sorted.Column == o.Column
		})
		c.sort = append(c.sort, o)
	}

	return c
}

// Paginate applies the sort, the cursor filter and the limit to db.
func (c *CursorPager[CursorType]) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = c.sort.Apply(db)
	db = c.cursor.Apply(db)

	return db.Limit(c.GetDatasetLimit()), nil
}

// GetLimit returns the window size.
func (c *CursorPager[CursorType]) GetLimit() int {
	if c == nil {
		return 0
	}

	return c.limit
}

// GetDatasetLimit returns the number of rows to read: the window size, plus
// one with lookahead.
func (c *CursorPager[CursorType]) GetDatasetLimit() int {
	if c == nil {
		return 0
	}

	if c.lookahead {
		return c.limit + 1
	}

	return c.limit
}

func (c *CursorPager[CursorType]) orNew() *CursorPager[CursorType] {
	if c == nil {
		return new(CursorPager[CursorType])
	}

	return c
}

func (c *CursorPager[CursorType]) getMaxLimit() int {
	if c == nil || c.maxLimit <= 0 {
		return MaxLimit
	}

	return c.maxLimit
}

func (c *CursorPager[_]) validate() error {
	if c == nil {
		return fmt.Errorf("cursor pager is nil")
	}

	if c.limit <= 0 {
		return fmt.Errorf("limit is not set")
	}

	if err := c.sort.validate(); err != nil {
		return err
	}

	return c.cursor.validate(c.sort)
}

// FetchPage reads the window of db selected by pager. With lookahead, the
// extra row is dropped and more reports whether it was present.
func FetchPage[T any, CursorType Cursor](db *gorm.DB, pager *CursorPager[CursorType]) (rows []T, more bool, err error) {
	query, err := pager.Paginate(db)
	if err != nil {
		return nil, false, err
	}

	if err = query.Find(&rows).Error; err != nil {
		return nil, false, err
	}

	if pager.lookahead && len(rows) > pager.limit {
		return rows[:pager.limit], true, nil
	}

	return rows, false, nil
}
