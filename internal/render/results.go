package render

import (
	"fmt"
	"io"
	"strconv"

	"vinculum/internal/driver"
)

// resultsDoc wraps results so every format has a top-level table.
type resultsDoc struct {
	Results []driver.Result `json:"results" yaml:"results" msgpack:"results"`
}

// tomlResult keeps values as strings: TOML integers are signed 64-bit.
type tomlResult struct {
	Input   string `toml:"input"`
	Numeral string `toml:"numeral"`
	Value   string `toml:"value"`
	Error   string `toml:"error,omitempty"`
}

type tomlResultsDoc struct {
	Results []tomlResult `toml:"result"`
}

// Results writes conversion results in format.
func Results(w io.Writer, results []driver.Result, format Format, opts Options) error {
	switch format {
	case FormatPretty:
		g := &grid{header: []string{"INPUT", "NUMERAL", "VALUE", "ERROR"}}
		for _, r := range results {
			value := strconv.FormatUint(r.Value, 10)
			if r.Error != "" {
				value = "-"
			}
			g.add(r.Error != "", quoteEmpty(r.Input), r.Numeral, value, r.Error)
		}
		return g.write(w, opts)
	case FormatTOML:
		doc := tomlResultsDoc{Results: make([]tomlResult, len(results))}
		for i, r := range results {
			doc.Results[i] = tomlResult{
				Input:   r.Input,
				Numeral: r.Numeral,
				Value:   strconv.FormatUint(r.Value, 10),
				Error:   r.Error,
			}
		}
		return encode(w, format, doc)
	default:
		return encode(w, format, resultsDoc{Results: results})
	}
}

// Steps writes an explain breakdown in format.
func Steps(w io.Writer, value uint64, steps []driver.Step, format Format, opts Options) error {
	switch format {
	case FormatPretty:
		g := &grid{header: []string{"TIER", "DIGIT", "VALUE", "GLYPHS"}}
		for _, s := range steps {
			g.add(false, fmt.Sprintf("10^%d", s.Tier), strconv.FormatUint(s.Digit, 10),
				strconv.FormatUint(s.Value, 10), s.Glyphs)
		}
		return g.write(w, opts)
	case FormatTOML:
		type tomlStep struct {
			Tier   int    `toml:"tier"`
			Digit  uint64 `toml:"digit"`
			Value  string `toml:"value"`
			Glyphs string `toml:"glyphs"`
		}
		doc := struct {
			Value string     `toml:"value"`
			Steps []tomlStep `toml:"step"`
		}{Value: strconv.FormatUint(value, 10)}
		for _, s := range steps {
			doc.Steps = append(doc.Steps, tomlStep{s.Tier, s.Digit, strconv.FormatUint(s.Value, 10), s.Glyphs})
		}
		return encode(w, format, doc)
	default:
		return encode(w, format, struct {
			Value uint64        `json:"value" yaml:"value" msgpack:"value"`
			Steps []driver.Step `json:"steps" yaml:"steps" msgpack:"steps"`
		}{value, steps})
	}
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
