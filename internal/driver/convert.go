// Package driver runs conversions for the CLI: it classifies raw input,
// calls the codec and records trace events.
package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"vinculum/internal/numeral"
	"vinculum/internal/trace"
)

// Kind tells which direction an input converts in.
type Kind uint8

const (
	KindArabic  Kind = iota + 1 // decimal integer, encoded to a numeral
	KindNumeral                 // numeral string, decoded to an integer
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindArabic:
		return "arabic"
	case KindNumeral:
		return "numeral"
	default:
		return "unknown"
	}
}

// Classify returns KindArabic when arg is a non-empty run of ASCII digits and
// KindNumeral for everything else, including the empty string.
func Classify(arg string) Kind {
	if arg == "" {
		return KindNumeral
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '9' {
			return KindNumeral
		}
	}
	return KindArabic
}

// Result is the outcome of converting one input.
type Result struct {
	Input   string `json:"input" yaml:"input" toml:"input" msgpack:"input"`
	Kind    Kind   `json:"-" yaml:"-" toml:"-" msgpack:"-"`
	Numeral string `json:"numeral" yaml:"numeral" toml:"numeral" msgpack:"numeral"`
	Value   uint64 `json:"value" yaml:"value" toml:"value" msgpack:"value"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty" msgpack:"error,omitempty"`
	Err     error  `json:"-" yaml:"-" toml:"-" msgpack:"-"`
}

// Output is the single value the CLI prints for r.
func (r Result) Output() string {
	if r.Kind == KindArabic {
		return r.Numeral
	}
	return strconv.FormatUint(r.Value, 10)
}

// ParseArabic parses a decimal integer. Values beyond uint64 are reported as
// numeral.ErrUnsupportedTier since no tier can hold them.
func ParseArabic(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s exceeds the uint64 range", numeral.ErrUnsupportedTier, arg)
	}
	return 0, fmt.Errorf("invalid integer %q: %w", arg, err)
}

// Convert classifies arg and converts it.
func Convert(ctx context.Context, codec numeral.Codec, arg string) Result {
	return ConvertAs(ctx, codec, Classify(arg), arg)
}

// ConvertAs converts arg in the given direction.
func ConvertAs(ctx context.Context, codec numeral.Codec, kind Kind, arg string) Result {
	t := trace.FromContext(ctx)
	span := trace.Begin(t, trace.ScopeItem, kind.String(), trace.ParentFrom(ctx))

	res := Result{Input: arg, Kind: kind}
	switch kind {
	case KindArabic:
		res.Value, res.Err = ParseArabic(arg)
		if res.Err == nil {
			res.Numeral, res.Err = encodeArabic(codec, res.Value)
		}
	case KindNumeral:
		res.Numeral = arg
		if t.Level().ShouldEmit(trace.ScopeToken) {
			traceTokens(t, arg, span.ID())
		}
		res.Value, res.Err = codec.Decode(arg)
	default:
		res.Err = fmt.Errorf("unknown conversion kind %d", kind)
	}

	if res.Err != nil {
		res.Error = res.Err.Error()
		trace.Fail(t, trace.ScopeItem, kind.String(), res.Err, span.ID())
		span.End(arg)
		return res
	}
	span.WithExtra("numeral", res.Numeral).
		WithExtra("value", strconv.FormatUint(res.Value, 10)).
		End(arg)
	return res
}

// encodeArabic encodes through numeral.Positive when zero is rejected, so the
// non-zero check happens once at the boundary.
func encodeArabic(codec numeral.Codec, v uint64) (string, error) {
	if codec.Zero != numeral.ZeroReject {
		return codec.Encode(v)
	}
	p, err := numeral.NewPositive(v)
	if err != nil {
		return "", err
	}
	return numeral.EncodePositive(p)
}

func traceTokens(t trace.Tracer, arg string, parent uint64) {
	for _, tok := range numeral.Tokenize(arg) {
		var detail string
		if v, err := numeral.Lookup(tok.Glyph); err == nil {
			detail = fmt.Sprintf("%s=%d @%d", tok.Glyph, v, tok.Offset)
		} else {
			detail = fmt.Sprintf("%s @%d: %v", tok.Glyph, tok.Offset, err)
		}
		trace.Point(t, trace.ScopeToken, "glyph", detail, parent)
	}
}
