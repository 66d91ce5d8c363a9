// Package connection forges GraphQL connection types over paginators.
//
// A Paginator is any data source that can read an ordered window of items
// and count the items matching a condition. For every paginator a Forge
// builds:
//   - a `<Name>Connection` type with `edges`, `nodes`, `pageInfo` and
//     `totalCount` fields;
//   - a `<Name>Edge` type with `cursor` and `node` fields;
//   - a `<Name>OrderBy` enum of the paginator orderings;
//   - connection fields accepting `first`, `last`, `before`, `after`,
//     `orderBy` and, optionally, `condition` arguments.
//
// Cursors are opaque tokens binding a paginator position marker to the
// ordering that produced it, so a cursor read with one ordering can not be
// replayed against another:
//
//	forge := connection.NewForge()
//	query := graphql.NewObject(graphql.ObjectConfig{
//		Name: "Query",
//		Fields: graphql.Fields{
//			"users": forge.CreateField(usersPaginator),
//		},
//	})
//
// Forged types are memoized per Forge, so every reference to a paginator
// within one schema resolves to the same type object.
package connection
