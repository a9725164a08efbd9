package width

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Oracle reports the display width of a single atomic text unit.
type Oracle interface {
	// UnitWidth returns the number of terminal columns the unit occupies.
	// ok is false when the unit has no assigned width, which is the case
	// for control characters; the caller decides what such units cost.
	UnitWidth(unit string) (cols int, ok bool)
}

// Terminal measures units the way a terminal emulator renders them.
// East Asian wide and fullwidth characters occupy two columns, combining
// marks occupy zero, and everything else occupies one. Results do not
// depend on the process locale.
type Terminal struct {
	cond *runewidth.Condition
}

// NewTerminal creates an oracle with the default width rules.
// East Asian Ambiguous characters count as one column.
func NewTerminal() *Terminal {
	return &Terminal{cond: &runewidth.Condition{}}
}

// NewTerminalEastAsian creates an oracle for legacy CJK terminals.
// East Asian Ambiguous characters count as two columns.
func NewTerminalEastAsian() *Terminal {
	return &Terminal{cond: &runewidth.Condition{
		EastAsianWidth:     true,
		StrictEmojiNeutral: true,
	}}
}

// UnitWidth returns the number of terminal columns the unit occupies.
// A unit that begins with a control character has no assigned width and
// reports ok == false. For multi-rune units such as grapheme clusters the
// width is that of the first non-zero-width rune, so an emoji followed by
// joiners or variation selectors still measures two columns.
func (t *Terminal) UnitWidth(unit string) (cols int, ok bool) {
	if unit == "" {
		return 0, true
	}
	first, _ := utf8.DecodeRuneInString(unit)
	if unicode.IsControl(first) {
		return 0, false
	}
	for _, r := range unit {
		cols = t.cond.RuneWidth(r)
		if cols > 0 {
			break
		}
	}
	return cols, true
}

// String is a convenience function returning the display width of an
// entire string under the default rules. Units with no assigned width
// count as zero columns here; truncate.Width applies a fallback policy
// instead.
func String(s string) int {
	return defaultCondition.StringWidth(s)
}

var defaultCondition = &runewidth.Condition{}
