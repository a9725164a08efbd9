package segment

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Segmenter splits text into atomic units that must never be divided.
type Segmenter interface {
	// FirstUnit returns the first atomic unit of s and the remaining text.
	// Both results are empty when s is empty.
	FirstUnit(s string) (unit, rest string)
}

// Graphemes splits on extended grapheme cluster boundaries (UAX #29), so
// combining sequences and emoji joined with zero width joiners stay whole.
// This is the granularity most callers want.
type Graphemes struct{}

// NewGraphemes creates a grapheme cluster segmenter.
func NewGraphemes() *Graphemes {
	return &Graphemes{}
}

// FirstUnit returns the first grapheme cluster of s and the remaining text.
func (g *Graphemes) FirstUnit(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster, rest
}

// Runes splits on code point boundaries. Cheaper than Graphemes, but a
// combining mark or joiner becomes its own unit, so a cut can separate it
// from the character it modifies.
type Runes struct{}

// NewRunes creates a code point segmenter.
func NewRunes() *Runes {
	return &Runes{}
}

// FirstUnit returns the first code point of s and the remaining text.
// Invalid bytes are yielded one at a time.
func (r *Runes) FirstUnit(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], s[size:]
}

// Count returns the number of units seg splits s into.
func Count(seg Segmenter, s string) int {
	n := 0
	for s != "" {
		_, s = seg.FirstUnit(s)
		n++
	}
	return n
}
