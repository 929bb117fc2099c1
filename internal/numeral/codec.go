package numeral

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// ZeroPolicy decides how zero and the empty numeral are treated.
type ZeroPolicy uint8

const (
	// ZeroReject treats zero as unrepresentable in both directions.
	ZeroReject ZeroPolicy = iota
	// ZeroEmpty maps zero to the empty numeral and back.
	ZeroEmpty
)

// String returns the string representation of ZeroPolicy.
func (p ZeroPolicy) String() string {
	switch p {
	case ZeroReject:
		return "reject"
	case ZeroEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ParseZeroPolicy converts a string to a ZeroPolicy.
func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return ZeroReject, nil
	case "empty":
		return ZeroEmpty, nil
	default:
		return ZeroReject, fmt.Errorf("invalid zero policy: %q (expected: reject|empty)", s)
	}
}

// Codec applies one zero policy to encoding and decoding alike.
// The zero value rejects zero.
type Codec struct {
	Zero ZeroPolicy
}

// Encode converts value to a numeral under the codec's zero policy.
func (c Codec) Encode(value uint64) (string, error) {
	return Encode(value, c.Zero == ZeroReject)
}

// Decode converts a numeral to its value under the codec's zero policy.
func (c Codec) Decode(s string) (uint64, error) {
	return decode(s, c.Zero)
}

// Positive is a value that is known to be non-zero.
type Positive struct {
	v uint64
}

// NewPositive wraps v, returning ErrZeroResult for zero.
func NewPositive(v uint64) (Positive, error) {
	if v == 0 {
		return Positive{}, ErrZeroResult
	}
	return Positive{v: v}, nil
}

// PositiveFromInt converts n to a Positive, rejecting zero and negatives.
func PositiveFromInt(n int) (Positive, error) {
	v, err := safecast.Conv[uint64](n)
	if err != nil {
		return Positive{}, fmt.Errorf("%d is not a positive integer: %w", n, err)
	}
	return NewPositive(v)
}

// Uint64 returns the wrapped value.
func (p Positive) Uint64() uint64 { return p.v }

// EncodePositive encodes p. It never fails for a Positive built by NewPositive.
func EncodePositive(p Positive) (string, error) {
	return Encode(p.v, true)
}
