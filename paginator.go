package gqlpager

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/Alp4ka/gqlpager/connection"
)

// ConditionFunc narrows a query to the rows matching a connection condition.
type ConditionFunc func(db *gorm.DB, condition any) *gorm.DB

// gormSource is the part of a paginator shared by every cursor strategy: the
// base query, the orderings and the paging policy.
type gormSource struct {
	name            string
	db              *gorm.DB
	itemType        graphql.Output
	orderings       []*KeysetOrdering
	defaultOrdering *KeysetOrdering
	where           ConditionFunc
	maxLimit        int
}

// PaginatorOption configures a paginator.
type PaginatorOption func(*gormSource)

// WithCondition makes the paginator accept connection conditions. Without it
// any condition other than connection.Unconditional fails the read.
func WithCondition(where ConditionFunc) PaginatorOption {
	return func(s *gormSource) {
		s.where = where
	}
}

// WithMaxLimit caps the page size. Defaults to MaxLimit.
func WithMaxLimit(maxLimit int) PaginatorOption {
	return func(s *gormSource) {
		s.maxLimit = maxLimit
	}
}

// WithDefaultOrdering selects the default ordering by name. Defaults to the
// first ordering.
func WithDefaultOrdering(name string) PaginatorOption {
	return func(s *gormSource) {
		ordering, ok := lo.Find(s.orderings, func(o *KeysetOrdering) bool { return o.Name() == name })
		if !ok {
			panic(fmt.Errorf("paginator '%s': unknown default ordering '%s'", s.name, name))
		}

		s.defaultOrdering = ordering
	}
}

func newGORMSource(name string, db *gorm.DB, itemType graphql.Output, orderings []*KeysetOrdering, opts []PaginatorOption) *gormSource {
	if len(orderings) == 0 {
		panic(fmt.Errorf("paginator '%s': at least one ordering is required", name))
	}

	for _, ordering := range orderings {
		if err := ordering.Sort().validate(); err != nil {
			panic(fmt.Errorf("paginator '%s': ordering '%s': %w", name, ordering.Name(), err))
		}
	}

	s := &gormSource{
		name:            name,
		db:              db.Session(&gorm.Session{}),
		itemType:        itemType,
		orderings:       orderings,
		defaultOrdering: orderings[0],
		maxLimit:        MaxLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name - implements connection.Paginator.
func (s *gormSource) Name() string {
	return s.name
}

// ItemType - implements connection.Paginator.
func (s *gormSource) ItemType() graphql.Output {
	return s.itemType
}

// Orderings - implements connection.Paginator.
func (s *gormSource) Orderings() []connection.Ordering {
	return lo.Map(s.orderings, func(o *KeysetOrdering, _ int) connection.Ordering { return o })
}

// DefaultOrdering - implements connection.Paginator.
func (s *gormSource) DefaultOrdering() connection.Ordering {
	return s.defaultOrdering
}

// Count - implements connection.Paginator.
func (s *gormSource) Count(ctx context.Context, condition connection.Condition) (int, error) {
	db, err := s.scope(ctx, condition)
	if err != nil {
		return 0, err
	}

	var count int64
	if err = db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("cannot count '%s': %w", s.name, err)
	}

	return int(count), nil
}

// scope returns the base query bound to ctx and narrowed by condition.
func (s *gormSource) scope(ctx context.Context, condition connection.Condition) (*gorm.DB, error) {
	db := s.db.WithContext(ctx)

	value, ok := condition.Value()
	if !ok {
		return db, nil
	}

	if s.where == nil {
		return nil, fmt.Errorf("paginator '%s' does not support conditions", s.name)
	}

	return s.where(db, value), nil
}

// ordering resolves the ordering of a read request.
func (s *gormSource) ordering(ordering connection.Ordering) (*KeysetOrdering, error) {
	if ordering == nil {
		return s.defaultOrdering, nil
	}

	ret, ok := ordering.(*KeysetOrdering)
	if !ok || !lo.Contains(s.orderings, ret) {
		return nil, fmt.Errorf("paginator '%s' does not support ordering '%s'", s.name, ordering.Name())
	}

	return ret, nil
}
