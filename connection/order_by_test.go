package connection

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OrderByType_Values(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("bar", "a", "created at desc", "nameAsc")

	enum := f.OrderByType(p)
	assert.Equal(t, "BarOrderBy", enum.Name())

	got := make(map[string]*graphql.EnumValueDefinition)
	for _, value := range enum.Values() {
		got[value.Name] = value
	}

	require.Len(t, got, 3)
	assert.Same(t, p.orderings[0], got["A"].Value)
	assert.Same(t, p.orderings[1], got["CREATED_AT_DESC"].Value)
	assert.Same(t, p.orderings[2], got["NAME_ASC"].Value)
	for _, value := range got {
		assert.Empty(t, value.Description)
		assert.Empty(t, value.DeprecationReason)
	}
}

func Test_OrderByType_Memoized(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("bar")

	assert.Same(t, f.OrderByType(p), f.OrderByType(p))
}

func Test_OrderByType_CollidingNamesPanic(t *testing.T) {
	f := NewForge()
	p := newTestPaginator("bar", "created_at", "createdAt")

	assert.Panics(t, func() { f.OrderByType(p) })
}
