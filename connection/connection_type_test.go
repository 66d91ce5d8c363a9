package connection

import (
	"errors"
	"sync"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ConnectionType_Name(t *testing.T) {
	assert.Equal(t, "BarConnection", NewForge().ConnectionType(newTestPaginator("bar")).Name())
}

func Test_ConnectionType_IsTypeOf(t *testing.T) {
	f := NewForge()
	p1 := newTestPaginator("foo")
	p2 := newTestPaginator("foo")
	connectionType := f.ConnectionType(p1)

	assert.True(t, connectionType.IsTypeOf(graphql.IsTypeOfParams{Value: &Envelope{Paginator: p1}}))
	assert.False(t, connectionType.IsTypeOf(graphql.IsTypeOfParams{Value: &Envelope{Paginator: p2}}))
}

func Test_ConnectionType_PageInfoResolvesSourceVerbatim(t *testing.T) {
	f := NewForge()
	env := &Envelope{}

	got, err := f.ConnectionType(newTestPaginator("foo")).Fields()["pageInfo"].Resolve(graphql.ResolveParams{Source: env})
	require.NoError(t, err)
	assert.Same(t, env, got)
}

func Test_ConnectionType_TotalCount(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("foo")
	p.total = 42
	ctx := newTestContext()
	condition := Where("condition")

	got, err := f.ConnectionType(p).Fields()["totalCount"].Resolve(graphql.ResolveParams{
		Source:  &Envelope{Paginator: p, Condition: condition},
		Context: ctx,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	require.Len(t, p.counts, 1)
	assert.Equal(t, ctx, p.counts[0].ctx)
	assert.Equal(t, condition, p.counts[0].condition)
}

func Test_ConnectionType_TotalCountError(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("foo")
	p.countErr = errors.New("boom")

	_, err := f.ConnectionType(p).Fields()["totalCount"].Resolve(graphql.ResolveParams{Source: &Envelope{Paginator: p}})
	assert.Same(t, p.countErr, err)
}

func Test_ConnectionType_Edges(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("foo")
	ordering := p.ordering("down")

	got, err := f.ConnectionType(p).Fields()["edges"].Resolve(graphql.ResolveParams{
		Source: &Envelope{Paginator: p, Ordering: ordering, Page: testPage(false, false, "a", "1", "b", "2")},
	})
	require.NoError(t, err)
	assert.Equal(t, []*Edge{
		{Value: "a", Cursor: "1", Paginator: p, Ordering: ordering},
		{Value: "b", Cursor: "2", Paginator: p, Ordering: ordering},
	}, got)
}

func Test_ConnectionType_EdgesFieldUsesEdgeType(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("foo")

	list, ok := f.ConnectionType(p).Fields()["edges"].Type.(*graphql.List)
	require.True(t, ok)
	assert.Same(t, f.EdgeType(p), list.OfType)
}

func Test_ConnectionType_Nodes(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("foo")

	got, err := f.ConnectionType(p).Fields()["nodes"].Resolve(graphql.ResolveParams{
		Source: &Envelope{Paginator: p, Page: testPage(false, false, "a", "1", "b", "2")},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)
}

func Test_ConnectionType_ConcurrentBuildsConverge(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("foo")

	const workers = 16
	types := make([]*graphql.Object, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			types[i] = f.ConnectionType(p)
		}()
	}
	wg.Wait()

	for _, connectionType := range types {
		assert.Same(t, types[0], connectionType)
	}
}
