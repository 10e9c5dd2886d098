// Package xml provides an XML record format.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/salt"
)

// xmlFormat implements salt.Format for XML.
type xmlFormat struct{}

// New returns an XML format.
func New() salt.Format {
	return &xmlFormat{}
}

// ContentType returns the MIME type for XML.
func (f *xmlFormat) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (f *xmlFormat) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (f *xmlFormat) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
