// Package render writes conversion results and the symbol table in the
// output formats the CLI supports.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format uint8

const (
	FormatPretty Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
	FormatMsgpack
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return FormatPretty, fmt.Errorf("unsupported format %q (expected pretty|json|yaml|toml|msgpack)", s)
	}
}

// Options controls pretty output.
type Options struct {
	Color bool
}

// encode writes v in one of the structured formats.
func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("format %s is not a structured format", format)
	}
}

// Document writes v in a structured format. FormatPretty is rejected since
// only the callers know how v reads as text.
func Document(w io.Writer, format Format, v any) error {
	return encode(w, format, v)
}
