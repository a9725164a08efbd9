package truncate

import (
	"github.com/randalmurphal/textkit/segment"
	"github.com/randalmurphal/textkit/width"
)

// Alignment selects which part of the text survives a cut.
type Alignment int

const (
	// AlignLeft keeps the start of the text, trimming from the end (default).
	AlignLeft Alignment = iota

	// AlignCenter keeps the middle of the text, trimming from both ends.
	AlignCenter

	// AlignRight keeps the end of the text, trimming from the start.
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// DefaultUndefinedWidth is the number of columns charged for units the
// width oracle has no width for, such as control characters.
const DefaultUndefinedWidth = 1

// Truncator cuts text to fit a display width without splitting the units
// its segmenter yields. A truncator is safe for concurrent use once
// configured.
type Truncator struct {
	seg       segment.Segmenter
	oracle    width.Oracle
	undefined int
}

// New creates a truncator that splits text into grapheme clusters and
// measures them with terminal width rules.
func New() *Truncator {
	return &Truncator{
		seg:       segment.NewGraphemes(),
		oracle:    width.NewTerminal(),
		undefined: DefaultUndefinedWidth,
	}
}

// WithSegmenter sets a custom segmenter.
func (t *Truncator) WithSegmenter(seg segment.Segmenter) *Truncator {
	t.seg = seg
	return t
}

// WithOracle sets a custom width oracle.
func (t *Truncator) WithOracle(oracle width.Oracle) *Truncator {
	t.oracle = oracle
	return t
}

// WithUndefinedWidth sets the columns charged for units the oracle has no
// width for. Negative values are treated as zero.
func (t *Truncator) WithUndefinedWidth(cols int) *Truncator {
	if cols < 0 {
		cols = 0
	}
	t.undefined = cols
	return t
}

// Aligned truncates s so that the part selected by align survives:
// AlignLeft trims from the end, AlignRight trims from the start, and
// AlignCenter trims from both ends. It returns the surviving slice and
// its exact display width.
func (t *Truncator) Aligned(s string, maxWidth int, align Alignment) (string, int) {
	switch align {
	case AlignRight:
		return t.Start(s, maxWidth)
	case AlignCenter:
		return t.Centered(s, maxWidth)
	default:
		return t.End(s, maxWidth)
	}
}

// Width returns the display width of s in columns: the sum of its unit
// widths, with units the oracle cannot measure charged at the configured
// fallback. The sum saturates instead of wrapping on pathological inputs.
func (t *Truncator) Width(s string) int {
	w := 0
	for s != "" {
		var unit string
		unit, s = t.seg.FirstUnit(s)
		w = saturatingAdd(w, t.unitWidth(unit))
	}
	return w
}

// Fits reports whether s displays in at most maxWidth columns.
func (t *Truncator) Fits(s string, maxWidth int) bool {
	return t.Width(s) <= maxWidth
}

// unitWidth applies the undefined-width fallback to oracle results.
func (t *Truncator) unitWidth(unit string) int {
	cols, ok := t.oracle.UnitWidth(unit)
	if !ok {
		return t.undefined
	}
	return cols
}
