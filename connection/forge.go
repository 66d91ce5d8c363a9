package connection

import (
	"strings"
	"sync"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
)

type typeKind string

const (
	kindPageInfo   typeKind = "PageInfo"
	kindEdge       typeKind = "Edge"
	kindOrderBy    typeKind = "OrderBy"
	kindConnection typeKind = "Connection"
)

type typeKey struct {
	kind      typeKind
	paginator Paginator
}

// Forge is the build context of one schema. It forges connection types and
// fields for paginators, returning the same type object every time the same
// paginator is referenced: graphql identifies types by object identity.
//
// A new schema build should start with a new Forge. A Forge is safe for
// concurrent use.
type Forge struct {
	globalCursors bool
	types         sync.Map // typeKey -> graphql.Type
}

type Option func(*Forge)

// WithGlobalCursors makes every emitted cursor carry the paginator name, so
// cursors of one connection are rejected by connections of other paginators.
func WithGlobalCursors() Option {
	return func(f *Forge) {
		f.globalCursors = true
	}
}

func NewForge(opts ...Option) *Forge {
	f := new(Forge)
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// memoize returns the type cached under key, building it first if needed.
// build runs outside of any lock; when two callers race, the first stored
// type wins and both get it.
func (f *Forge) memoize(key typeKey, build func() graphql.Type) graphql.Type {
	if t, ok := f.types.Load(key); ok {
		return t.(graphql.Type)
	}

	t, _ := f.types.LoadOrStore(key, build())

	return t.(graphql.Type)
}

// cursorFor binds a raw position marker to an ordering, and to the paginator
// when global cursors are enabled.
func (f *Forge) cursorFor(paginator Paginator, ordering Ordering, position string) Cursor {
	c := Cursor{Position: position}
	if ordering != nil {
		c.OrderingName = lo.ToPtr(ordering.Name())
	}
	if f.globalCursors && paginator != nil {
		c.PaginatorName = lo.ToPtr(paginator.Name())
	}

	return c
}

func typeName(paginator Paginator, suffix typeKind) string {
	return lo.PascalCase(paginator.Name()) + string(suffix)
}

func enumValueName(name string) string {
	return strings.ToUpper(lo.SnakeCase(name))
}
