package connection

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
)

// ConnectionType returns the connection type of paginator. Its fields resolve
// from the *Envelope a connection field returns.
func (f *Forge) ConnectionType(paginator Paginator) *graphql.Object {
	key := typeKey{kind: kindConnection, paginator: paginator}

	return f.memoize(key, func() graphql.Type { return f.createConnectionType(paginator) }).(*graphql.Object)
}

func (f *Forge) createConnectionType(paginator Paginator) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        typeName(paginator, kindConnection),
		Description: fmt.Sprintf("A connection to a list of `%s` values.", paginator.Name()),
		Interfaces:  []*graphql.Interface{f.ConnectionInterface()},
		IsTypeOf: func(p graphql.IsTypeOfParams) bool {
			env, ok := p.Value.(*Envelope)
			return ok && env != nil && env.Paginator == paginator
		},
		Fields: graphql.Fields{
			"pageInfo": &graphql.Field{
				Type:        graphql.NewNonNull(f.PageInfoType()),
				Description: "Information to aid in pagination.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source, nil
				},
			},
			"totalCount": &graphql.Field{
				Type:        graphql.Int,
				Description: "The count of all items matching the condition, ignoring pagination.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					env, err := envelopeOf(p.Source)
					if err != nil {
						return nil, err
					}

					return paginator.Count(p.Context, env.Condition)
				},
			},
			"edges": &graphql.Field{
				Type:        graphql.NewList(f.EdgeType(paginator)),
				Description: "A list of edges.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					env, err := envelopeOf(p.Source)
					if err != nil {
						return nil, err
					}

					return edgesOf(env), nil
				},
			},
			"nodes": &graphql.Field{
				Type:        graphql.NewList(paginator.ItemType()),
				Description: "A list of nodes, bypassing the edges.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					env, err := envelopeOf(p.Source)
					if err != nil {
						return nil, err
					}

					return nodesOf(env), nil
				},
			},
		},
	})
}

func edgesOf(env *Envelope) []*Edge {
	return lo.Map(env.Page.Values(), func(value PageValue, _ int) *Edge {
		return &Edge{
			Value:     value.Value,
			Cursor:    value.Cursor,
			Paginator: env.Paginator,
			Ordering:  env.Ordering,
		}
	})
}

func nodesOf(env *Envelope) []any {
	return lo.Map(env.Page.Values(), func(value PageValue, _ int) any {
		return value.Value
	})
}
