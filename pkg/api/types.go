package api

import (
	"fmt"
	"unicode/utf8"

	"github.com/ssargent/fourcc/pkg/fourcc"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string // empty disables the X-API-Key check
	// LogRequests enables the chi request logger
	LogRequests bool
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

// Description is everything the service reports about a single code
type Description struct {
	// Code is the text form; nil when the bytes are not valid UTF-8 and so
	// cannot round-trip through text.
	Code      *fourcc.FourCC `json:"code" yaml:"code"`
	Display   string         `json:"display" yaml:"display"`
	Debug     string         `json:"debug" yaml:"debug"`
	Uint32    uint32         `json:"uint32" yaml:"uint32"`
	Hex       string         `json:"hex" yaml:"hex"`
	Printable bool           `json:"printable" yaml:"printable"`
	UTF8      bool           `json:"utf8" yaml:"utf8"`
}

// NewDescription describes c
func NewDescription(c fourcc.FourCC) Description {
	d := Description{
		Display:   c.String(),
		Debug:     c.GoString(),
		Uint32:    c.Uint32(),
		Hex:       fmt.Sprintf("%x", c),
		Printable: c.IsPrintable(),
		UTF8:      utf8.Valid(c[:]),
	}
	if d.UTF8 {
		code := c
		d.Code = &code
	}
	return d
}
