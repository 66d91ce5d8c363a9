package gqlpager

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/Alp4ka/gqlpager/connection"
)

// OffsetPaginator reads pages of T with LIMIT/OFFSET. Item positions are
// PseudoCursor offsets, so its orderings do not need a unique column, at the
// price of unstable pages while the dataset changes.
type OffsetPaginator[T any] struct {
	*gormSource
}

func NewOffsetPaginator[T any](
	name string,
	db *gorm.DB,
	itemType graphql.Output,
	orderings []*KeysetOrdering,
	opts ...PaginatorOption,
) *OffsetPaginator[T] {
	return &OffsetPaginator[T]{
		gormSource: newGORMSource(name, db, itemType, orderings, opts),
	}
}

// ReadPage - implements connection.Paginator.
//
// The window starts past `after` and ends before `before`. `first` takes the
// head of the window, `last` its tail; without `before`, `last` counts the
// dataset to find the end of the window.
func (p *OffsetPaginator[T]) ReadPage(ctx context.Context, req connection.ReadRequest) (connection.Page, error) {
	ordering, err := p.ordering(req.Ordering)
	if err != nil {
		return nil, err
	}

	start, err := p.decodeOffset("after", req.AfterCursor)
	if err != nil {
		return nil, err
	}

	end := -1
	if req.BeforeCursor != nil {
		beforeOffset, err := p.decodeOffset("before", req.BeforeCursor)
		if err != nil {
			return nil, err
		}

		end = max(beforeOffset-1, start)
	}

	backward := req.Last != nil && req.First == nil
	page := &connection.StaticPage{}

	var offset, limit int
	lookahead := false

	if backward {
		size, err := pageSize("last", req.Last, p.maxLimit)
		if err != nil {
			return nil, err
		}

		if end < 0 {
			total, err := p.Count(ctx, req.Condition)
			if err != nil {
				return nil, err
			}

			end = max(total, start)
		}

		offset = max(start, end-size)
		limit = end - offset
		page.HasPrevious = offset > 0
		page.HasNext = req.BeforeCursor != nil
	} else {
		size, err := pageSize("first", req.First, p.maxLimit)
		if err != nil {
			return nil, err
		}

		offset = start
		limit = size
		page.HasPrevious = start > 0

		if end >= 0 && start+size >= end {
			limit = end - start
			page.HasNext = true
		} else {
			lookahead = true
		}
	}

	var items []T
	if limit > 0 {
		query, err := p.scope(ctx, req.Condition)
		if err != nil {
			return nil, err
		}

		pager := NewCursorPager[*PseudoCursor]().
			WithMaxLimit(p.maxLimit).
			WithCursor(NewPseudoCursor(offset)).
			WithSubstitutedSort(ordering.Sort()...).
			WithLimit(limit)
		if lookahead {
			pager = pager.WithLookahead()
		}

		var more bool
		items, more, err = FetchPage[T](query, pager)
		if err != nil {
			return nil, fmt.Errorf("cannot read page of '%s': %w", p.name, err)
		}

		if lookahead {
			page.HasNext = more
		}
	}

	if !backward && req.Last != nil {
		last, err := pageSize("last", req.Last, p.maxLimit)
		if err != nil {
			return nil, err
		}

		if len(items) > last {
			drop := len(items) - last
			items = items[drop:]
			offset += drop
			page.HasPrevious = true
		}
	}

	page.Items = make([]connection.PageValue, 0, len(items))
	for i, item := range items {
		page.Items = append(page.Items, connection.PageValue{
			Value:  item,
			Cursor: OffsetCursor(offset + i).String(),
		})
	}

	return page, nil
}

// decodeOffset parses a position marker into the offset to resume reading
// after it. A missing marker is the start of the dataset.
func (p *OffsetPaginator[T]) decodeOffset(arg string, marker *string) (int, error) {
	if marker == nil {
		return 0, nil
	}

	position, err := DecodePseudoCursor(*marker)
	if err != nil {
		return 0, fmt.Errorf("invalid `%s` position: %w", arg, err)
	}

	if position.IsEmpty() || position.GetOffset() < 0 {
		return 0, fmt.Errorf("invalid `%s` position: offset out of range", arg)
	}

	return position.GetOffset(), nil
}

var _ connection.Paginator = (*OffsetPaginator[any])(nil)
