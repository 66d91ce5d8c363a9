package connection

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
)

const (
	ArgFirst     = "first"
	ArgLast      = "last"
	ArgBefore    = "before"
	ArgAfter     = "after"
	ArgOrderBy   = "orderBy"
	ArgCondition = "condition"
)

// ConditionFunc builds the paginator condition from the parent source value
// and the `condition` argument.
type ConditionFunc func(source any, arg any) (any, error)

// FieldConfig adds a `condition` argument to a connection field.
// ConditionType and GetCondition go together.
type FieldConfig struct {
	ConditionType graphql.Input
	GetCondition  ConditionFunc
	Description   string
}

// CreateField builds a connection field for paginator, ready to be installed
// into a parent object's fields.
//
// The field accepts `first`, `last`, `before` and `after`, `orderBy` when the
// paginator has more than one ordering, and `condition` when cfg carries a
// condition type. It resolves to an *Envelope.
func (f *Forge) CreateField(paginator Paginator, cfg ...FieldConfig) *graphql.Field {
	var config FieldConfig
	if len(cfg) > 0 {
		config = cfg[0]
	}

	if config.ConditionType != nil && config.GetCondition == nil {
		panic(fmt.Errorf("paginator '%s': condition type '%s' has no condition func", paginator.Name(), config.ConditionType.Name()))
	}

	args := graphql.FieldConfigArgument{
		ArgFirst: &graphql.ArgumentConfig{
			Type:        graphql.Int,
			Description: "Read the first `n` values.",
		},
		ArgLast: &graphql.ArgumentConfig{
			Type:        graphql.Int,
			Description: "Read the last `n` values.",
		},
		ArgBefore: &graphql.ArgumentConfig{
			Type:        CursorType,
			Description: "Read values before this cursor.",
		},
		ArgAfter: &graphql.ArgumentConfig{
			Type:        CursorType,
			Description: "Read values after this cursor.",
		},
	}

	if len(paginator.Orderings()) > 1 {
		args[ArgOrderBy] = &graphql.ArgumentConfig{
			Type:        f.OrderByType(paginator),
			Description: "The order the values are read in.",
		}
	}

	if config.ConditionType != nil {
		args[ArgCondition] = &graphql.ArgumentConfig{
			Type:        config.ConditionType,
			Description: "A condition values must match.",
		}
	}

	resolver := &fieldResolver{paginator: paginator, config: config}

	return &graphql.Field{
		Type:        f.ConnectionType(paginator),
		Args:        args,
		Description: config.Description,
		Resolve:     resolver.resolve,
	}
}

type fieldResolver struct {
	paginator Paginator
	config    FieldConfig
}

func (r *fieldResolver) resolve(p graphql.ResolveParams) (any, error) {
	ctx := p.Context
	if ctx == nil {
		ctx = context.Background()
	}

	condition := Unconditional
	if r.config.ConditionType != nil {
		value, err := r.config.GetCondition(p.Source, p.Args[ArgCondition])
		if err != nil {
			return nil, err
		}

		condition = Where(value)
	}

	selected, _ := p.Args[ArgOrderBy].(Ordering)
	ordering := selected
	if ordering == nil {
		ordering = r.paginator.DefaultOrdering()
	}

	before, err := r.position(ArgBefore, p.Args, ordering, selected != nil)
	if err != nil {
		return nil, err
	}

	after, err := r.position(ArgAfter, p.Args, ordering, selected != nil)
	if err != nil {
		return nil, err
	}

	req := ReadRequest{
		Ordering:     selected,
		BeforeCursor: before,
		AfterCursor:  after,
		First:        intArg(p.Args, ArgFirst),
		Last:         intArg(p.Args, ArgLast),
		Condition:    condition,
	}

	page, err := r.paginator.ReadPage(ctx, req)
	if err != nil {
		return nil, err
	}

	if page == nil {
		page = new(StaticPage)
	}

	return &Envelope{
		Paginator: r.paginator,
		Ordering:  ordering,
		Condition: condition,
		Page:      page,
	}, nil
}

// position validates the cursor given as arg and returns its raw marker, or
// nil when the argument is absent.
//
// A cursor without an ordering name is only accepted when the client did not
// select an ordering.
func (r *fieldResolver) position(arg string, args map[string]any, ordering Ordering, selected bool) (*string, error) {
	var c Cursor
	switch v := args[arg].(type) {
	case Cursor:
		c = v
	case *Cursor:
		if v == nil {
			return nil, nil
		}
		c = *v
	default:
		return nil, nil
	}

	if c.PaginatorName != nil && *c.PaginatorName != r.paginator.Name() {
		return nil, &CursorError{Argument: arg, Err: ErrCursorConnection}
	}

	if c.OrderingName == nil {
		if selected {
			return nil, &CursorError{Argument: arg, Err: ErrCursorOrderBy}
		}
	} else if ordering == nil || *c.OrderingName != ordering.Name() {
		return nil, &CursorError{Argument: arg, Err: ErrCursorOrderBy}
	}

	return lo.ToPtr(c.Position), nil
}

func intArg(args map[string]any, name string) *int {
	n, ok := args[name].(int)
	if !ok {
		return nil
	}

	return &n
}
