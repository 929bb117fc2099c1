package numeral

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedTier reports a tier index outside [MinTier, MaxTier].
	ErrUnsupportedTier = errors.New("unsupported tier")
	// ErrUnsupportedDigit reports a tier digit outside 0..9. It signals a bug
	// in the caller's decomposition, never bad user input.
	ErrUnsupportedDigit = errors.New("unsupported digit")
	// ErrUnknownGlyph reports a token that has no entry in the value table.
	ErrUnknownGlyph = errors.New("unknown glyph")
	// ErrMalformedNumeral reports a subtractive sequence that cannot be resolved.
	ErrMalformedNumeral = errors.New("malformed numeral")
	// ErrZeroResult reports zero on either side of the codec under ZeroReject.
	ErrZeroResult = errors.New("zero has no numeral representation")
	// ErrOverflow reports a numeral whose value does not fit in uint64.
	ErrOverflow = errors.New("numeral exceeds uint64 range")
)

// GlyphError describes a failure tied to one token of the input.
type GlyphError struct {
	Glyph  string
	Offset int // byte offset in the NFC-normalised input
	Err    error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("%v %q at byte %d of the normalized input", e.Err, e.Glyph, e.Offset)
}

func (e *GlyphError) Unwrap() error { return e.Err }
