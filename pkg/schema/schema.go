// Package schema describes fourcc.FourCC for OpenAPI/Swagger documents.
//
// A FourCC is described as an opaque string, matching its text encoding. It
// is never described as an object or a byte array and needs no nested
// definitions. The schema is meant to be inlined wherever a FourCC appears;
// there is no $ref form.
package schema

import (
	"github.com/go-openapi/spec"

	"github.com/ssargent/fourcc/pkg/fourcc"
)

// Name is the definition name used for FourCC.
const Name = "FourCC"

const description = "Four-character code. Four bytes rendered as text; " +
	"codes that are not valid UTF-8 are rendered with \\xHH escapes."

// FourCC returns the schema of a FourCC value, to be inlined into the
// schema that holds it.
func FourCC() *spec.Schema {
	s := spec.StringProperty().
		WithTitle(Name).
		WithDescription(description).
		WithExample(fourcc.MustParse("uuid").String())
	return s
}

// Definitions returns the FourCC schema keyed by Name, for listing what the
// package describes.
func Definitions() spec.Definitions {
	return spec.Definitions{Name: *FourCC()}
}
