// Package segment splits text into the atomic units a cut may not divide.
//
// Every unit is a contiguous byte range of the input. Walking FirstUnit to
// exhaustion visits each byte exactly once and in order, so concatenating
// the units reproduces the input byte for byte.
//
// # Segmenter
//
// The Segmenter interface yields one unit at a time:
//
//	seg := segment.NewGraphemes()
//	unit, rest := seg.FirstUnit("👍🏽!")   // "👍🏽", "!"
//
// Graphemes splits on extended grapheme cluster boundaries (UAX #29) and
// keeps combining sequences and joined emoji whole. Runes splits on code
// point boundaries instead:
//
//	seg := segment.NewRunes()
//	unit, rest := seg.FirstUnit("é")  // "e", "́"
//
// Runes is cheaper but can strand a combining mark on the far side of a
// cut, where it attaches to whatever ends up adjacent.
//
// # Count
//
// Count reports how many units a segmenter sees in a string:
//
//	n := segment.Count(segment.NewGraphemes(), "café")  // 4
//	n = segment.Count(segment.NewRunes(), "café")       // 5
package segment
