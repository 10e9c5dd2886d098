// Package yaml provides a YAML record format.
package yaml

import (
	"github.com/zoobzio/salt"
	"gopkg.in/yaml.v3"
)

// yamlFormat implements salt.Format for YAML.
type yamlFormat struct{}

// New returns a YAML format.
func New() salt.Format {
	return &yamlFormat{}
}

// ContentType returns the MIME type for YAML.
func (f *yamlFormat) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (f *yamlFormat) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (f *yamlFormat) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
