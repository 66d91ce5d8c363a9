package connection

import (
	"context"
	"sync"

	"github.com/graphql-go/graphql"
)

type tOrdering struct {
	name string
}

func (o *tOrdering) Name() string {
	return o.name
}

type tReadCall struct {
	ctx context.Context
	req ReadRequest
}

type tCountCall struct {
	ctx       context.Context
	condition Condition
}

// tPaginator records every call it receives.
type tPaginator struct {
	name      string
	itemType  graphql.Output
	orderings []Ordering
	page      Page
	readErr   error
	total     int
	countErr  error

	mu     sync.Mutex
	reads  []tReadCall
	counts []tCountCall
}

func newTestPaginator(name string, orderingNames ...string) *tPaginator {
	if len(orderingNames) == 0 {
		orderingNames = []string{"up", "down"}
	}

	p := &tPaginator{name: name, itemType: graphql.String}
	for _, orderingName := range orderingNames {
		p.orderings = append(p.orderings, &tOrdering{name: orderingName})
	}

	return p
}

func (p *tPaginator) Name() string              { return p.name }
func (p *tPaginator) ItemType() graphql.Output  { return p.itemType }
func (p *tPaginator) Orderings() []Ordering     { return p.orderings }
func (p *tPaginator) DefaultOrdering() Ordering { return p.orderings[0] }

func (p *tPaginator) ordering(name string) Ordering {
	for _, o := range p.orderings {
		if o.Name() == name {
			return o
		}
	}

	return nil
}

func (p *tPaginator) ReadPage(ctx context.Context, req ReadRequest) (Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reads = append(p.reads, tReadCall{ctx: ctx, req: req})

	return p.page, p.readErr
}

func (p *tPaginator) Count(ctx context.Context, condition Condition) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.counts = append(p.counts, tCountCall{ctx: ctx, condition: condition})

	return p.total, p.countErr
}

var _ Paginator = (*tPaginator)(nil)

type tCtxKey struct{}

func newTestContext() context.Context {
	return context.WithValue(context.Background(), tCtxKey{}, "request")
}

func strPtr(s string) *string {
	return &s
}

func testPage(hasNext, hasPrevious bool, pairs ...string) *StaticPage {
	page := &StaticPage{HasNext: hasNext, HasPrevious: hasPrevious}
	for i := 0; i+1 < len(pairs); i += 2 {
		page.Items = append(page.Items, PageValue{Value: pairs[i], Cursor: pairs[i+1]})
	}

	return page
}
