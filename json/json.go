// Package json provides a JSON record format.
package json

import (
	"encoding/json"

	"github.com/zoobzio/salt"
)

// jsonFormat implements salt.Format for JSON.
type jsonFormat struct{}

// New returns a JSON format.
func New() salt.Format {
	return &jsonFormat{}
}

// ContentType returns the MIME type for JSON.
func (f *jsonFormat) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (f *jsonFormat) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (f *jsonFormat) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
