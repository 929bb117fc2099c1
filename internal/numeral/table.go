package numeral

import (
	"fmt"
	"math"
	"math/bits"
	"sort"

	"golang.org/x/text/unicode/norm"
)

const (
	// MinTier is the lowest tier (10^0).
	MinTier = 0
	// MaxTier is the highest tier in the table (10^20).
	MaxTier = 20
	// TopTier is the highest tier whose power of ten fits in uint64. The
	// encoder starts here; tier MaxTier only exists so the table is closed.
	TopTier = 19
)

// Combining marks that build the vinculum levels.
const (
	markOverline       = "\u0305"
	markDoubleOverline = "\u033F"
	markLowLine        = "\u0332"
	markDoubleLowLine  = "\u0333"
	markVerticalLine   = "\u20D2"
)

// levelMarks holds the mark stack for each vinculum level.
var levelMarks = [...]string{
	"",
	markOverline,
	markDoubleOverline,
	markOverline + markLowLine,
	markOverline + markDoubleLowLine,
	markDoubleOverline + markLowLine,
	markDoubleOverline + markDoubleLowLine,
	markDoubleOverline + markDoubleLowLine + markVerticalLine,
}

// letters maps every base letter to its level-0 value.
var letters = [...]struct {
	letter string
	value  uint64
}{
	{"I", 1},
	{"V", 5},
	{"X", 10},
	{"L", 50},
	{"C", 100},
	{"D", 500},
	{"M", 1000},
}

// Triple is the glyph set used by one tier.
type Triple struct {
	Unit string // 1 × 10^t
	Five string // 5 × 10^t
	Ten  string // 10 × 10^t, equal to the next tier's Unit
}

// Symbol is one entry of the glyph value table.
type Symbol struct {
	Glyph string
	Value uint64
	Level int
	// Alias marks glyphs that decode but are never produced by the encoder.
	Alias bool
	// Oversized marks glyphs whose value exceeds uint64. Value is zero then.
	Oversized bool
}

type table struct {
	tiers   [MaxTier + 1]Triple
	symbols map[string]Symbol
	pow10   [TopTier + 1]uint64
}

var std = buildTable()

func buildTable() *table {
	tb := &table{symbols: make(map[string]Symbol, len(letters)*len(levelMarks))}

	for level := range levelMarks {
		scale, fits := pow1000(level)
		for _, l := range letters {
			sym := Symbol{Glyph: glyph(l.letter, level), Level: level, Alias: l.letter == "M"}
			hi, lo := bits.Mul64(l.value, scale)
			if !fits || hi != 0 {
				sym.Oversized = true
			} else {
				sym.Value = lo
			}
			tb.symbols[sym.Glyph] = sym
		}
	}

	for t := MinTier; t <= MaxTier; t++ {
		level := t / 3
		switch t % 3 {
		case 0:
			tb.tiers[t] = Triple{glyph("I", level), glyph("V", level), glyph("X", level)}
		case 1:
			tb.tiers[t] = Triple{glyph("X", level), glyph("L", level), glyph("C", level)}
		case 2:
			tb.tiers[t] = Triple{glyph("C", level), glyph("D", level), glyph("I", level+1)}
		}
	}

	p := uint64(1)
	for t := range tb.pow10 {
		tb.pow10[t] = p
		p *= 10
	}
	return tb
}

func glyph(letter string, level int) string {
	return norm.NFC.String(letter + levelMarks[level])
}

// pow1000 returns 1000^level and whether it fits in uint64.
func pow1000(level int) (uint64, bool) {
	v := uint64(1)
	for range level {
		if v > math.MaxUint64/1000 {
			return 0, false
		}
		v *= 1000
	}
	return v, true
}

// Tiers returns the glyph triple for tier t.
func Tiers(t int) (Triple, error) {
	if t < MinTier || t > MaxTier {
		return Triple{}, fmt.Errorf("%w: %d (expected %d..%d)", ErrUnsupportedTier, t, MinTier, MaxTier)
	}
	return std.tiers[t], nil
}

// Pow10 returns 10^t for tiers that fit in uint64.
func Pow10(t int) (uint64, error) {
	if t < MinTier || t > TopTier {
		return 0, fmt.Errorf("%w: 10^%d does not fit in uint64", ErrUnsupportedTier, t)
	}
	return std.pow10[t], nil
}

// Lookup resolves a single glyph to its value.
func Lookup(g string) (uint64, error) {
	sym, ok := std.symbols[g]
	if !ok {
		sym, ok = std.symbols[norm.NFC.String(g)]
	}
	switch {
	case !ok:
		return 0, fmt.Errorf("%w %q", ErrUnknownGlyph, g)
	case sym.Oversized:
		return 0, fmt.Errorf("%w: glyph %q", ErrOverflow, g)
	}
	return sym.Value, nil
}

// Symbols returns every glyph of the value table ordered by level, then value.
// Oversized glyphs sort last within their level.
func Symbols() []Symbol {
	out := make([]Symbol, 0, len(std.symbols))
	for _, s := range std.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.Oversized != b.Oversized {
			return b.Oversized
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.Glyph < b.Glyph
	})
	return out
}
