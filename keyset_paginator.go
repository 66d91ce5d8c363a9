package gqlpager

import (
	"context"
	"fmt"
	"slices"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/Alp4ka/gqlpager/connection"
)

// KeysetPaginator reads pages of T with keyset (seek) pagination: every item
// position is the DefaultCursor of its ordering column values, and a page
// continues strictly past a position instead of skipping rows by offset.
type KeysetPaginator[T any] struct {
	*gormSource
	getters Getters[T]
}

// NewKeysetPaginator creates a paginator over db, typically a db.Model(...)
// or db.Table(...) query. getters must cover every column of every ordering.
func NewKeysetPaginator[T any](
	name string,
	db *gorm.DB,
	itemType graphql.Output,
	getters Getters[T],
	orderings []*KeysetOrdering,
	opts ...PaginatorOption,
) *KeysetPaginator[T] {
	source := newGORMSource(name, db, itemType, orderings, opts)

	for _, ordering := range orderings {
		for _, orderBy := range ordering.Sort() {
			if _, ok := getters[orderBy.Column]; !ok {
				panic(fmt.Errorf("paginator '%s': no getter for column '%s' of ordering '%s'", name, orderBy.Column, ordering.Name()))
			}
		}
	}

	return &KeysetPaginator[T]{
		gormSource: source,
		getters:    getters,
	}
}

// ReadPage - implements connection.Paginator.
//
// `first` reads forwards from `after`, `last` reads backwards from `before`.
// When both are set, the last `last` items of the first `first` items are
// returned. Both cursors may bound the same read; a bounding cursor always
// reports a page on its side.
func (p *KeysetPaginator[T]) ReadPage(ctx context.Context, req connection.ReadRequest) (connection.Page, error) {
	ordering, err := p.ordering(req.Ordering)
	if err != nil {
		return nil, err
	}

	sort := ordering.Sort()

	after, err := p.decodePosition("after", req.AfterCursor, sort)
	if err != nil {
		return nil, err
	}

	before, err := p.decodePosition("before", req.BeforeCursor, sort)
	if err != nil {
		return nil, err
	}

	backward := req.Last != nil && req.First == nil

	size, err := pageSize("first", req.First, p.maxLimit)
	if backward {
		size, err = pageSize("last", req.Last, p.maxLimit)
	}
	if err != nil {
		return nil, err
	}

	page := &connection.StaticPage{
		HasNext:     before != nil,
		HasPrevious: after != nil,
	}
	if size == 0 {
		return page, nil
	}

	query, err := p.scope(ctx, req.Condition)
	if err != nil {
		return nil, err
	}

	pager := NewCursorPager[*DefaultCursor]().WithMaxLimit(p.maxLimit)
	if backward {
		query = after.Apply(query)
		pager = pager.WithCursor(before.Inverted()).WithSubstitutedSort(sort.Reverse()...)
	} else {
		query = before.Inverted().Apply(query)
		pager = pager.WithCursor(after).WithSubstitutedSort(sort...)
	}

	items, more, err := FetchPage[T](query, pager.WithLimit(size).WithLookahead())
	if err != nil {
		return nil, fmt.Errorf("cannot read page of '%s': %w", p.name, err)
	}

	if backward {
		slices.Reverse(items)
		page.HasPrevious = more || after != nil
	} else {
		page.HasNext = more || before != nil

		if req.Last != nil {
			last, err := pageSize("last", req.Last, p.maxLimit)
			if err != nil {
				return nil, err
			}

			if len(items) > last {
				items = items[len(items)-last:]
				page.HasPrevious = true
			}
		}
	}

	page.Items = make([]connection.PageValue, 0, len(items))
	for _, item := range items {
		position, err := KeysetCursor(sort, p.getters, item)
		if err != nil {
			return nil, err
		}

		page.Items = append(page.Items, connection.PageValue{Value: item, Cursor: position.String()})
	}

	return page, nil
}

// decodePosition parses a position marker and checks it was issued for sort.
func (p *KeysetPaginator[T]) decodePosition(arg string, marker *string, sort Orderings) (*DefaultCursor, error) {
	if marker == nil {
		return nil, nil
	}

	position, err := DecodeCursor(*marker)
	if err != nil {
		return nil, fmt.Errorf("invalid `%s` position: %w", arg, err)
	}

	if position.IsEmpty() {
		return nil, fmt.Errorf("invalid `%s` position: empty cursor", arg)
	}

	if err = position.validate(sort); err != nil {
		return nil, fmt.Errorf("invalid `%s` position: %w", arg, err)
	}

	return position, nil
}

var _ connection.Paginator = (*KeysetPaginator[any])(nil)
