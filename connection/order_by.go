package connection

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// OrderByType returns the enum of paginator orderings. Each member carries
// the Ordering itself, so a selected orderBy argument resolves to the
// Ordering rather than its name.
func (f *Forge) OrderByType(paginator Paginator) *graphql.Enum {
	key := typeKey{kind: kindOrderBy, paginator: paginator}

	return f.memoize(key, func() graphql.Type { return createOrderByType(paginator) }).(*graphql.Enum)
}

func createOrderByType(paginator Paginator) *graphql.Enum {
	values := make(graphql.EnumValueConfigMap, len(paginator.Orderings()))
	for _, ordering := range paginator.Orderings() {
		name := enumValueName(ordering.Name())
		if _, ok := values[name]; ok {
			panic(fmt.Errorf("paginator '%s': orderings collide on enum value '%s'", paginator.Name(), name))
		}

		values[name] = &graphql.EnumValueConfig{Value: ordering}
	}

	return graphql.NewEnum(graphql.EnumConfig{
		Name:   typeName(paginator, kindOrderBy),
		Values: values,
	})
}
