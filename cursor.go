package gqlpager

import (
	"encoding/base64"

	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"
)

var (
	_encoder = base64.RawURLEncoding
	// Position numbers decode as json.Number so ids above 2^53 stay exact.
	_json = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              true,
	}.Froze()
)

// Cursor is a position within a dataset. Its String form is the position
// marker paginators hand out with every page item.
type Cursor interface {
	String() string
	IsEmpty() bool
	Apply(*gorm.DB) *gorm.DB
	validate(orderings Orderings) error
}
