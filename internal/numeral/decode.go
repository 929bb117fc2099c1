package numeral

import (
	"fmt"
	"math"
)

// Values resolves every token of s to its glyph value, preserving order.
// It stops at the first token that cannot be resolved.
func Values(s string) ([]uint64, error) {
	toks := Tokenize(s)
	vals := make([]uint64, 0, len(toks))
	for _, tok := range toks {
		sym, ok := std.symbols[tok.Glyph]
		switch {
		case !ok:
			return nil, &GlyphError{Glyph: tok.Glyph, Offset: tok.Offset, Err: ErrUnknownGlyph}
		case sym.Oversized:
			return nil, &GlyphError{Glyph: tok.Glyph, Offset: tok.Offset, Err: ErrOverflow}
		}
		vals = append(vals, sym.Value)
	}
	return vals, nil
}

// Sum adds up glyph values left to right. A value smaller than its successor
// is turned into a subtrahend: it was already counted once, so the total loses
// it twice before the successor is added.
func Sum(vals []uint64) (uint64, error) {
	var total, prev uint64
	for i, v := range vals {
		if i > 0 && prev < v {
			// total must still hold prev as a standalone addend.
			if total < prev {
				return 0, ErrMalformedNumeral
			}
			total -= prev
			v -= prev
		}
		if total > math.MaxUint64-v {
			return 0, ErrOverflow
		}
		total += v
		prev = vals[i]
	}
	return total, nil
}

// Decode converts a numeral string to its value. The empty string and any
// other input summing to zero fail with ErrZeroResult.
func Decode(s string) (uint64, error) {
	return decode(s, ZeroReject)
}

func decode(s string, zero ZeroPolicy) (uint64, error) {
	vals, err := Values(s)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", s, err)
	}
	n, err := Sum(vals)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", s, err)
	}
	if n == 0 && zero == ZeroReject {
		return 0, ErrZeroResult
	}
	return n, nil
}
