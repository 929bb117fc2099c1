package numeral

import (
	"fmt"
	"strings"
)

// TierDigit is one non-zero decimal digit of a value together with its tier.
type TierDigit struct {
	Tier  int
	Digit uint64
}

// Digits decomposes value into its non-zero tier digits, highest tier first.
func Digits(value uint64) []TierDigit {
	out := make([]TierDigit, 0, TopTier+1)
	rest := value
	for t := TopTier; t >= MinTier; t-- {
		p := std.pow10[t]
		d := rest / p
		if d == 0 {
			continue
		}
		out = append(out, TierDigit{Tier: t, Digit: d})
		rest -= d * p
	}
	return out
}

// Pattern returns the glyphs for a single digit at tier t.
func Pattern(t int, digit uint64) (string, error) {
	tr, err := Tiers(t)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := writeDigit(&sb, tr, digit); err != nil {
		return "", fmt.Errorf("tier %d: %w", t, err)
	}
	return sb.String(), nil
}

func writeDigit(sb *strings.Builder, tr Triple, digit uint64) error {
	switch digit {
	case 0:
	case 1, 2, 3:
		for range digit {
			sb.WriteString(tr.Unit)
		}
	case 4:
		sb.WriteString(tr.Unit)
		sb.WriteString(tr.Five)
	case 5, 6, 7, 8:
		sb.WriteString(tr.Five)
		for range digit - 5 {
			sb.WriteString(tr.Unit)
		}
	case 9:
		sb.WriteString(tr.Unit)
		sb.WriteString(tr.Ten)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedDigit, digit)
	}
	return nil
}

// Encode converts value to its vinculum numeral. When nonzero is set, zero is
// rejected with ErrZeroResult; otherwise zero encodes to the empty string.
func Encode(value uint64, nonzero bool) (string, error) {
	if value == 0 {
		if nonzero {
			return "", ErrZeroResult
		}
		return "", nil
	}
	var sb strings.Builder
	for _, td := range Digits(value) {
		if err := writeDigit(&sb, std.tiers[td.Tier], td.Digit); err != nil {
			return "", fmt.Errorf("encode %d at tier %d: %w", value, td.Tier, err)
		}
	}
	return sb.String(), nil
}
