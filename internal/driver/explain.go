package driver

import "vinculum/internal/numeral"

// Step is one tier of an encoded value.
type Step struct {
	Tier   int    `json:"tier" yaml:"tier" toml:"tier" msgpack:"tier"`
	Digit  uint64 `json:"digit" yaml:"digit" toml:"digit" msgpack:"digit"`
	Value  uint64 `json:"value" yaml:"value" toml:"value" msgpack:"value"`
	Glyphs string `json:"glyphs" yaml:"glyphs" toml:"glyphs" msgpack:"glyphs"`
}

// Explain breaks value into the tier digits the encoder writes.
func Explain(value uint64) ([]Step, error) {
	digits := numeral.Digits(value)
	steps := make([]Step, 0, len(digits))
	for _, d := range digits {
		glyphs, err := numeral.Pattern(d.Tier, d.Digit)
		if err != nil {
			return nil, err
		}
		p, err := numeral.Pow10(d.Tier)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Tier: d.Tier, Digit: d.Digit, Value: d.Digit * p, Glyphs: glyphs})
	}
	return steps, nil
}
