package connection

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// PageInfoType returns the shared PageInfo type. Its fields resolve from an
// *Envelope.
func (f *Forge) PageInfoType() *graphql.Object {
	return f.memoize(typeKey{kind: kindPageInfo}, f.createPageInfoType).(*graphql.Object)
}

func (f *Forge) createPageInfoType() graphql.Type {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        string(kindPageInfo),
		Description: "Information about pagination in a connection.",
		Fields: graphql.Fields{
			"hasNextPage": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "When paginating forwards, are there more items?",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					env, err := envelopeOf(p.Source)
					if err != nil {
						return nil, err
					}

					return env.Page.HasNextPage(p.Context)
				},
			},
			"hasPreviousPage": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "When paginating backwards, are there more items?",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					env, err := envelopeOf(p.Source)
					if err != nil {
						return nil, err
					}

					return env.Page.HasPreviousPage(p.Context)
				},
			},
			"startCursor": &graphql.Field{
				Type:        CursorType,
				Description: "When paginating backwards, the cursor to continue.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.boundaryCursor(p.Source, firstValue)
				},
			},
			"endCursor": &graphql.Field{
				Type:        CursorType,
				Description: "When paginating forwards, the cursor to continue.",
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.boundaryCursor(p.Source, lastValue)
				},
			},
		},
	})
}

// boundaryCursor binds the marker of the picked page value to the envelope's
// ordering. An empty page has no boundary cursor.
func (f *Forge) boundaryCursor(source any, pick func([]PageValue) (PageValue, bool)) (any, error) {
	env, err := envelopeOf(source)
	if err != nil {
		return nil, err
	}

	value, ok := pick(env.Page.Values())
	if !ok {
		return nil, nil
	}

	return f.cursorFor(env.Paginator, env.Ordering, value.Cursor), nil
}

func firstValue(values []PageValue) (PageValue, bool) {
	if len(values) == 0 {
		return PageValue{}, false
	}

	return values[0], true
}

func lastValue(values []PageValue) (PageValue, bool) {
	if len(values) == 0 {
		return PageValue{}, false
	}

	return values[len(values)-1], true
}

func envelopeOf(source any) (*Envelope, error) {
	env, ok := source.(*Envelope)
	if !ok || env == nil {
		return nil, fmt.Errorf("unexpected connection source %T", source)
	}

	return env, nil
}
