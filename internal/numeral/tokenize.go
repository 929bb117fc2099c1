package numeral

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Token is one grapheme cluster of a numeral string.
type Token struct {
	Glyph  string
	Offset int // byte offset in the NFC-normalised input
}

// Tokenize splits s into grapheme clusters after NFC normalisation. A base
// letter and all of its combining marks always form one token.
func Tokenize(s string) []Token {
	if s == "" {
		return nil
	}
	rest := norm.NFC.String(s)
	toks := make([]Token, 0, len(rest))
	offset := 0
	state := -1
	var cluster string
	for rest != "" {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		toks = append(toks, Token{Glyph: cluster, Offset: offset})
		offset += len(cluster)
	}
	return toks
}
