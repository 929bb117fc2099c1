package render

import (
	"fmt"
	"io"
	"strconv"

	"vinculum/internal/numeral"
)

// TierRow is one line of the tier table.
type TierRow struct {
	Tier int    `json:"tier" yaml:"tier" toml:"tier" msgpack:"tier"`
	Unit string `json:"unit" yaml:"unit" toml:"unit" msgpack:"unit"`
	Five string `json:"five" yaml:"five" toml:"five" msgpack:"five"`
	Ten  string `json:"ten" yaml:"ten" toml:"ten" msgpack:"ten"`
}

// SymbolRow is one glyph of the value table. Value is a decimal string so
// oversized glyphs can be shown as well.
type SymbolRow struct {
	Glyph string `json:"glyph" yaml:"glyph" toml:"glyph" msgpack:"glyph"`
	Level int    `json:"level" yaml:"level" toml:"level" msgpack:"level"`
	Value string `json:"value" yaml:"value" toml:"value" msgpack:"value"`
	Alias bool   `json:"alias,omitempty" yaml:"alias,omitempty" toml:"alias,omitempty" msgpack:"alias,omitempty"`
}

// TierRows lists every tier of the table.
func TierRows() ([]TierRow, error) {
	rows := make([]TierRow, 0, numeral.MaxTier+1)
	for t := numeral.MinTier; t <= numeral.MaxTier; t++ {
		tr, err := numeral.Tiers(t)
		if err != nil {
			return nil, err
		}
		rows = append(rows, TierRow{Tier: t, Unit: tr.Unit, Five: tr.Five, Ten: tr.Ten})
	}
	return rows, nil
}

// SymbolRows lists every glyph of the value table.
func SymbolRows() []SymbolRow {
	syms := numeral.Symbols()
	rows := make([]SymbolRow, len(syms))
	for i, s := range syms {
		value := strconv.FormatUint(s.Value, 10)
		if s.Oversized {
			value = "overflow"
		}
		rows[i] = SymbolRow{Glyph: s.Glyph, Level: s.Level, Value: value, Alias: s.Alias}
	}
	return rows
}

// Tiers writes the tier table in format.
func Tiers(w io.Writer, rows []TierRow, format Format, opts Options) error {
	if format != FormatPretty {
		return encode(w, format, struct {
			Tiers []TierRow `json:"tiers" yaml:"tiers" toml:"tier" msgpack:"tiers"`
		}{rows})
	}
	g := &grid{header: []string{"TIER", "UNIT", "FIVE", "TEN"}}
	for _, r := range rows {
		g.add(false, fmt.Sprintf("10^%d", r.Tier), r.Unit, r.Five, r.Ten)
	}
	return g.write(w, opts)
}

// Symbols writes the glyph value table in format.
func Symbols(w io.Writer, rows []SymbolRow, format Format, opts Options) error {
	if format != FormatPretty {
		return encode(w, format, struct {
			Symbols []SymbolRow `json:"symbols" yaml:"symbols" toml:"symbol" msgpack:"symbols"`
		}{rows})
	}
	g := &grid{header: []string{"GLYPH", "LEVEL", "VALUE", "ALIAS"}}
	for _, r := range rows {
		alias := ""
		if r.Alias {
			alias = "yes"
		}
		g.add(false, r.Glyph, strconv.Itoa(r.Level), r.Value, alias)
	}
	return g.write(w, opts)
}
