package connection

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// EdgeType returns the edge type of paginator. Edge fields resolve from an
// *Edge.
func (f *Forge) EdgeType(paginator Paginator) *graphql.Object {
	key := typeKey{kind: kindEdge, paginator: paginator}

	return f.memoize(key, func() graphql.Type { return f.createEdgeType(paginator) }).(*graphql.Object)
}

func (f *Forge) createEdgeType(paginator Paginator) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        typeName(paginator, kindEdge),
		Description: fmt.Sprintf("A `%s` edge in the connection.", paginator.Name()),
		Interfaces:  []*graphql.Interface{f.EdgeInterface()},
		IsTypeOf: func(p graphql.IsTypeOfParams) bool {
			edge, ok := p.Value.(*Edge)
			return ok && edge != nil && edge.Paginator == paginator
		},
		Fields: graphql.Fields{
			"cursor": &graphql.Field{
				Type:        graphql.NewNonNull(CursorType),
				Description: "A cursor for use in pagination.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					edge, err := edgeOf(p.Source)
					if err != nil {
						return nil, err
					}

					return f.cursorFor(paginator, edge.Ordering, edge.Cursor), nil
				},
			},
			"node": &graphql.Field{
				Type:        paginator.ItemType(),
				Description: "The item at the end of the edge.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					edge, err := edgeOf(p.Source)
					if err != nil {
						return nil, err
					}

					return edge.Value, nil
				},
			},
		},
	})
}

func edgeOf(source any) (*Edge, error) {
	edge, ok := source.(*Edge)
	if !ok || edge == nil {
		return nil, fmt.Errorf("unexpected edge source %T", source)
	}

	return edge, nil
}
