package connection

import (
	"context"

	"github.com/graphql-go/graphql"
)

// Ordering is a named sort order a Paginator can read pages with. The
// comparison data behind the name belongs to the concrete implementation.
type Ordering interface {
	Name() string
}

// Paginator is a data source that can read an ordered window of items and
// count the items matching a condition.
//
// Paginators are compared by identity, so implementations should be pointer
// types created once per schema.
type Paginator interface {
	// Name uniquely identifies the paginator within a schema.
	Name() string
	// ItemType is the output type of a single item value.
	ItemType() graphql.Output
	// Orderings lists every ordering the paginator supports.
	Orderings() []Ordering
	// DefaultOrdering is used when the client does not select one.
	DefaultOrdering() Ordering
	ReadPage(ctx context.Context, req ReadRequest) (Page, error)
	Count(ctx context.Context, condition Condition) (int, error)
}

// ReadRequest is a normalized page read built from client arguments.
type ReadRequest struct {
	// Ordering is nil when the client did not select an ordering.
	Ordering     Ordering
	BeforeCursor *string
	AfterCursor  *string
	First        *int
	Last         *int
	Condition    Condition
}

// PageValue is a single item of a page together with its position marker.
type PageValue struct {
	Value  any
	Cursor string
}

// Page is an ordered window of items produced for a single read request.
type Page interface {
	Values() []PageValue
	HasNextPage(ctx context.Context) (bool, error)
	HasPreviousPage(ctx context.Context) (bool, error)
}

// StaticPage is a Page whose boundary flags are known when it is read.
type StaticPage struct {
	Items       []PageValue
	HasNext     bool
	HasPrevious bool
}

func (p *StaticPage) Values() []PageValue {
	if p == nil {
		return nil
	}

	return p.Items
}

func (p *StaticPage) HasNextPage(context.Context) (bool, error) {
	return p != nil && p.HasNext, nil
}

func (p *StaticPage) HasPreviousPage(context.Context) (bool, error) {
	return p != nil && p.HasPrevious, nil
}

var _ Page = (*StaticPage)(nil)

// Condition is an opaque filter threaded from field arguments to the
// paginator. The zero value is Unconditional.
type Condition struct {
	value    any
	filtered bool
}

// Unconditional matches every item.
var Unconditional = Condition{}

// Where wraps a filter value built by a field's condition function.
func Where(value any) Condition {
	return Condition{value: value, filtered: true}
}

// Value returns the filter value and false for Unconditional.
func (c Condition) Value() (any, bool) {
	return c.value, c.filtered
}

func (c Condition) IsUnconditional() bool {
	return !c.filtered
}

// Envelope is the value a connection field resolves to. The connection,
// edge and page info types read from it.
type Envelope struct {
	Paginator Paginator
	// Ordering is the effective ordering: the selected one or the default.
	Ordering  Ordering
	Condition Condition
	Page      Page
}

// Edge is a single page item stamped with the connection it came from.
type Edge struct {
	Value     any
	Cursor    string
	Paginator Paginator
	Ordering  Ordering
}
