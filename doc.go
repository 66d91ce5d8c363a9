// Package gqlpager serves GraphQL connections from GORM queries.
//
// Overview
//
// The connection package forges the Relay connection schema (Connection,
// Edge, PageInfo and OrderBy types and the connection field itself) around
// any connection.Paginator. This package provides the GORM paginators:
//   - KeysetPaginator: keyset pagination using comparison operators against
//     the position of an item. This scales well on large datasets and
//     requires a deterministic ordering with at least one unique column.
//   - OffsetPaginator: LIMIT/OFFSET positions when true cursors are not
//     possible.
//
// Key concepts
//   - KeysetOrdering: a named multi-column ordering, exposed as an orderBy
//     enum value.
//   - CursorPager: orchestrates pagination, lookahead, sorting and applying
//     cursors to GORM queries.
//   - Getters: maps model fields to values for building item positions.
//
// See examples/graphql-api for a complete server.
package gqlpager
