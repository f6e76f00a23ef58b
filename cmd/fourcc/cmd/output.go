package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/fourcc/pkg/api"
	"github.com/ssargent/fourcc/pkg/config"
	"github.com/ssargent/fourcc/pkg/fourcc"
)

// printDescription writes the description of code in the configured format
func printDescription(w io.Writer, format string, code fourcc.FourCC) error {
	d := api.NewDescription(code)

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		return printText(w, d)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

func printText(w io.Writer, d api.Description) error {
	code := "-"
	if d.Code != nil {
		code = d.Code.String()
	}

	_, err := fmt.Fprintf(w,
		"code:      %s\ndisplay:   %s\ndebug:     %s\nuint32:    %d (0x%08x)\nhex:       %s\nprintable: %t\nutf8:      %t\n",
		code, d.Display, d.Debug, d.Uint32, d.Uint32, d.Hex, d.Printable, d.UTF8)
	return err
}
