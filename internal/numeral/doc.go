// Package numeral converts between unsigned integers and Roman numerals
// written in extended vinculum notation.
//
// # Tiers
//
// A tier is a power of ten 10^t with t in [MinTier, MaxTier]. Each tier owns a
// glyph triple (unit, five, ten) and the encoder writes one decimal digit per
// tier with the classical subtractive patterns:
//
//	1 u   2 uu   3 uuu   4 uf   5 f   6 fu   7 fuu   8 fuuu   9 u+ten
//
// Triples cycle through (I,V,X), (X,L,C) and (C,D,I') every three tiers, where
// I' is the unit glyph of the next vinculum level. A level multiplies its base
// letter by 1000^level and is written as a stack of combining marks:
//
//	level 0  I           ×1
//	level 1  I̅           ×10^3   overline
//	level 2  I̿           ×10^6   double overline
//	level 3  overline + low line          ×10^9
//	level 4  overline + double low line   ×10^12
//	level 5  double overline + low line   ×10^15
//	level 6  double overline + double low line   ×10^18
//	level 7  level 6 + long vertical line overlay ×10^21
//
// Levels 3 and above are an extension chosen to reach the uint64 range; no
// historical convention exists at that scale.
//
// # Decoding
//
// Input is NFC-normalised and split into grapheme clusters, so a base letter
// always stays attached to its marks. The letter M at any level is accepted
// as an alias of the next level's I (M = I̅ = 1000) but never emitted.
//
// All functions are safe for concurrent use; the symbol table is built once
// at package initialisation and never mutated.
package numeral
