package connection

import (
	"encoding/base64"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	jsoniter "github.com/json-iterator/go"
)

var (
	_encoder = base64.RawURLEncoding
	_json    = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Cursor is the decoded form of a cursor token: a position marker bound to
// the ordering, and optionally the paginator, that produced it.
//
// On the wire a cursor is the base64 encoded JSON array
//
//	[orderingName, position]
//
// or, when PaginatorName is set,
//
//	[paginatorName, orderingName, position]
type Cursor struct {
	PaginatorName *string
	OrderingName  *string
	Position      string
}

// EncodeCursor returns the opaque token for c.
func EncodeCursor(c Cursor) string {
	tuple := []*string{c.OrderingName, &c.Position}
	if c.PaginatorName != nil {
		tuple = append([]*string{c.PaginatorName}, tuple...)
	}

	raw, err := _json.Marshal(tuple)
	if err != nil {
		panic(fmt.Errorf("cannot marshal cursor value: %w", err))
	}

	return _encoder.EncodeToString(raw)
}

// DecodeCursor parses a token produced by EncodeCursor. Malformed tokens
// return an error wrapping ErrMalformedCursor.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := _encoder.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: failed to decode base64 encoded cursor: %v", ErrMalformedCursor, err)
	}

	var tuple []*string
	if err = _json.Unmarshal(raw, &tuple); err != nil {
		return Cursor{}, fmt.Errorf("%w: failed to unmarshal json encoded cursor: %v", ErrMalformedCursor, err)
	}

	switch len(tuple) {
	case 2:
		if tuple[1] == nil {
			return Cursor{}, fmt.Errorf("%w: missing position", ErrMalformedCursor)
		}

		return Cursor{OrderingName: tuple[0], Position: *tuple[1]}, nil
	case 3:
		if tuple[2] == nil {
			return Cursor{}, fmt.Errorf("%w: missing position", ErrMalformedCursor)
		}

		return Cursor{PaginatorName: tuple[0], OrderingName: tuple[1], Position: *tuple[2]}, nil
	default:
		return Cursor{}, fmt.Errorf("%w: unexpected tuple length %d", ErrMalformedCursor, len(tuple))
	}
}

// CursorType is the scalar every connection uses for cursors. Input values
// are decoded into Cursor, output values are encoded from Cursor.
var CursorType = graphql.NewScalar(graphql.ScalarConfig{
	Name:         "Cursor",
	Description:  "An opaque cursor used for pagination.",
	Serialize:    serializeCursor,
	ParseValue:   parseCursorValue,
	ParseLiteral: parseCursorLiteral,
})

func serializeCursor(value any) any {
	switch c := value.(type) {
	case Cursor:
		return EncodeCursor(c)
	case *Cursor:
		if c == nil {
			return nil
		}

		return EncodeCursor(*c)
	default:
		return nil
	}
}

// parseCursorValue returns nil for anything that is not a valid token, which
// graphql reports as an invalid variable value.
func parseCursorValue(value any) any {
	token, ok := value.(string)
	if !ok {
		return nil
	}

	c, err := DecodeCursor(token)
	if err != nil {
		return nil
	}

	return c
}

// parseCursorLiteral runs during validation and must never fail loudly: any
// literal other than a decodable string yields nil.
func parseCursorLiteral(valueAST ast.Value) any {
	s, ok := valueAST.(*ast.StringValue)
	if !ok {
		return nil
	}

	return parseCursorValue(s.Value)
}
