package connection

import (
	"github.com/graphql-go/graphql"
)

const (
	kindEdgeInterface       typeKind = "EdgeInterface"
	kindConnectionInterface typeKind = "ConnectionInterface"
)

// EdgeInterface returns the `Edge` interface every forged edge type
// implements.
func (f *Forge) EdgeInterface() *graphql.Interface {
	key := typeKey{kind: kindEdgeInterface}

	return f.memoize(key, func() graphql.Type {
		return graphql.NewInterface(graphql.InterfaceConfig{
			Name:        "Edge",
			Description: "An edge in a connection.",
			Fields: graphql.Fields{
				"cursor": &graphql.Field{
					Type:        graphql.NewNonNull(CursorType),
					Description: "A cursor for use in pagination.",
				},
			},
		})
	}).(*graphql.Interface)
}

// ConnectionInterface returns the `Connection` interface every forged
// connection type implements.
func (f *Forge) ConnectionInterface() *graphql.Interface {
	key := typeKey{kind: kindConnectionInterface}

	return f.memoize(key, func() graphql.Type {
		return graphql.NewInterface(graphql.InterfaceConfig{
			Name:        "Connection",
			Description: "A connection to a list of items.",
			Fields: graphql.Fields{
				"pageInfo": &graphql.Field{
					Type:        graphql.NewNonNull(f.PageInfoType()),
					Description: "Information to aid in pagination.",
				},
				"totalCount": &graphql.Field{
					Type:        graphql.Int,
					Description: "The count of all items matching the condition, ignoring pagination.",
				},
			},
		})
	}).(*graphql.Interface)
}
