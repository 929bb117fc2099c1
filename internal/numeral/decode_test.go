package numeral

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"I", 1}, {"III", 3}, {"IV", 4}, {"VIII", 8}, {"IX", 9},
		{"XIV", 14}, {"XXXIX", 39}, {"XL", 40}, {"LX", 60},
		{"CCXLVI", 246}, {"CD", 400}, {"DCCC", 800}, {"CI̅", 900},
		{"DCCLXXXIX", 789},
		{"I̅", 1000},
		{"I̅IX", 1009},
		{"I̅DCCLXXVI", 1776},
		{"I̅CI̅XVIII", 1918},
		{"I̅I̅CDXXI", 2421},
		{"I̅I̅I̅CI̅XCIX", 3999},
		{"I̅V̅", 4000},
		{"I̅V̅DCXXVII", 4627},
		{"V̅I̅", 6000},
		{"X̅V̅I̅I̅I̅XXXIV", 18034},
		{"X̅X̅V̅CDLIX", 25459},
		{"D̅I", 500001},
		{"I̿", 1000000},
		{"V̿", 5000000},
		{"D̿", 500000000},
	}
	for _, tc := range cases {
		got, err := Decode(tc.in)
		if err != nil {
			t.Fatalf("Decode(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Decode(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDecodeThousandAliases(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"M", 1000},
		{"MCMXCIX", 1999},
		{"M̅", 1000000},
		{"M̅I", 1000001},
		{"M̅M̅M̅", 3000000},
		{"M̿", 1000000000},
		{"M̿M̿M̿M̿", 4000000000},
	}
	for _, tc := range cases {
		got, err := Decode(tc.in)
		if err != nil {
			t.Fatalf("Decode(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Decode(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDecodeMultiMarkGlyph(t *testing.T) {
	billion := glyph("I", 3)
	got, err := Decode(billion)
	if err != nil {
		t.Fatalf("Decode(tier-9 unit): %v", err)
	}
	if got != 1_000_000_000 {
		t.Fatalf("Decode(tier-9 unit) = %d, want 10^9", got)
	}

	// Marks typed in non-canonical order still form the same glyph.
	raw := "I" + markOverline + markLowLine
	if got, err := Decode(raw + "V"); err != nil || got != 1_000_000_005 {
		t.Fatalf("Decode(%q) = %d, %v; want 1000000005", raw+"V", got, err)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, n := range sampleValues() {
		s, err := Encode(n, true)
		if err != nil {
			t.Fatalf("Encode(%d): %v", n, err)
		}
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(Encode(%d) = %q): %v", n, s, err)
		}
		if got != n {
			t.Errorf("Decode(Encode(%d)) = %d (numeral %q)", n, got, s)
		}
	}
	for n := uint64(1); n <= 4000; n++ {
		s, _ := Encode(n, true)
		if got, err := Decode(s); err != nil || got != n {
			t.Fatalf("round trip %d via %q = %d, %v", n, s, got, err)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(""); !errors.Is(err, ErrZeroResult) {
		t.Fatalf("Decode(\"\") error = %v, want ErrZeroResult", err)
	}

	_, err := Decode("XQV")
	if !errors.Is(err, ErrUnknownGlyph) {
		t.Fatalf("Decode(\"XQV\") error = %v, want ErrUnknownGlyph", err)
	}
	var ge *GlyphError
	if !errors.As(err, &ge) {
		t.Fatalf("Decode(\"XQV\") error %T is not a *GlyphError", err)
	}
	if ge.Glyph != "Q" || ge.Offset != 1 {
		t.Fatalf("GlyphError = %+v, want glyph Q at offset 1", ge)
	}
	if want := `decode "XQV": unknown glyph "Q" at byte 1 of the normalized input`; err.Error() != want {
		t.Fatalf("Decode(\"XQV\") error text = %q, want %q", err.Error(), want)
	}

	// A bare combining mark is its own cluster and has no value.
	if _, err := Decode(markOverline); !errors.Is(err, ErrUnknownGlyph) {
		t.Fatalf("Decode(bare overline) error = %v, want ErrUnknownGlyph", err)
	}
	if _, err := Decode("iv"); !errors.Is(err, ErrUnknownGlyph) {
		t.Fatalf("Decode(\"iv\") error = %v, want ErrUnknownGlyph", err)
	}
	if _, err := Decode("IVX"); !errors.Is(err, ErrMalformedNumeral) {
		t.Fatalf("Decode(\"IVX\") error = %v, want ErrMalformedNumeral", err)
	}
	if _, err := Decode("IVX"); err == nil || !strings.HasPrefix(err.Error(), `decode "IVX": `) {
		t.Fatalf("Decode(\"IVX\") error = %v, want a decode prefix", err)
	}
}

func TestDecodeOverflow(t *testing.T) {
	top := glyph("X", 6)
	if got, err := Decode(top); err != nil || got != 10_000_000_000_000_000_000 {
		t.Fatalf("Decode(tier-19 unit) = %d, %v", got, err)
	}
	if _, err := Decode(top + top); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Decode(2*10^19) error = %v, want ErrOverflow", err)
	}
	if _, err := Decode(glyph("L", 6)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Decode(oversized glyph) error = %v, want ErrOverflow", err)
	}
	topNumeral, _ := Encode(math.MaxUint64, true)
	if _, err := Decode(topNumeral + "I"); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Decode(MaxUint64+1) error = %v, want ErrOverflow", err)
	}
}

func TestCodecZeroEmpty(t *testing.T) {
	c := Codec{Zero: ZeroEmpty}
	got, err := c.Decode("")
	if err != nil || got != 0 {
		t.Fatalf("ZeroEmpty Decode(\"\") = %d, %v; want 0", got, err)
	}
	if got, err := c.Decode("XLII"); err != nil || got != 42 {
		t.Fatalf("ZeroEmpty Decode(\"XLII\") = %d, %v", got, err)
	}
	if _, err := (Codec{}).Decode(""); !errors.Is(err, ErrZeroResult) {
		t.Fatalf("default codec Decode(\"\") error = %v", err)
	}
}

func TestSum(t *testing.T) {
	cases := []struct {
		vals []uint64
		want uint64
	}{
		{nil, 0},
		{[]uint64{1, 5}, 4},
		{[]uint64{100, 1000}, 900},
		{[]uint64{10, 50, 1, 10}, 49},
		// Repetition is not validated: IIV resolves to 1 + (5 - 1).
		{[]uint64{1, 1, 5}, 5},
		// A correction is accepted while the running total still holds the
		// previous value: IIVX and VX both resolve to 5.
		{[]uint64{1, 1, 5, 10}, 5},
		{[]uint64{5, 10}, 5},
	}
	for _, tc := range cases {
		got, err := Sum(tc.vals)
		if err != nil {
			t.Fatalf("Sum(%v): %v", tc.vals, err)
		}
		if got != tc.want {
			t.Errorf("Sum(%v) = %d, want %d", tc.vals, got, tc.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	toks := Tokenize("X̅X̅V̅CD")
	want := []Token{{"X̅", 0}, {"X̅", 3}, {"V̅", 6}, {"C", 9}, {"D", 10}}
	if len(toks) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
	if toks := Tokenize(""); len(toks) != 0 {
		t.Fatalf("Tokenize(\"\") = %v, want none", toks)
	}
	multi := Tokenize(glyph("I", 7) + "I")
	if len(multi) != 2 {
		t.Fatalf("three-mark glyph split into %d tokens", len(multi))
	}
}

func TestPositive(t *testing.T) {
	if _, err := NewPositive(0); !errors.Is(err, ErrZeroResult) {
		t.Fatalf("NewPositive(0) error = %v", err)
	}
	if _, err := PositiveFromInt(-3); err == nil {
		t.Fatal("PositiveFromInt(-3) should fail")
	}
	p, err := PositiveFromInt(1776)
	if err != nil {
		t.Fatalf("PositiveFromInt(1776): %v", err)
	}
	s, err := EncodePositive(p)
	if err != nil || s != "I̅DCCLXXVI" {
		t.Fatalf("EncodePositive(1776) = %q, %v", s, err)
	}
	if p.Uint64() != 1776 {
		t.Fatalf("Uint64() = %d", p.Uint64())
	}
}
