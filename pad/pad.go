package pad

import (
	"strings"

	"github.com/randalmurphal/textkit/truncate"
)

// Padder pads text with spaces to a target display width, optionally
// truncating text that is too wide for it.
type Padder struct {
	tr *truncate.Truncator
}

// New creates a padder that measures and cuts with the default truncator:
// grapheme cluster units and terminal width rules.
func New() *Padder {
	return &Padder{tr: truncate.New()}
}

// WithTruncator sets the truncator used for measuring and cutting.
func (p *Padder) WithTruncator(tr *truncate.Truncator) *Padder {
	p.tr = tr
	return p
}

// String pads s with spaces to targetWidth display columns. The alignment
// names where the text sits: AlignLeft pads on the right, AlignRight pads
// on the left, and AlignCenter splits the padding, giving the extra space
// of an odd split to the right.
//
// When truncateToFit is false, text at or over the target width is
// returned unchanged. When it is true, wide text is first cut with
// Truncator.Aligned and the result always displays at exactly targetWidth
// columns.
func (p *Padder) String(s string, targetWidth int, align truncate.Alignment, truncateToFit bool) string {
	if targetWidth < 0 {
		targetWidth = 0
	}

	w := p.tr.Width(s)
	if !truncateToFit && w >= targetWidth {
		return s
	}
	slice := s
	if w > targetWidth {
		slice, w = p.tr.Aligned(s, targetWidth, align)
	}
	if w == targetWidth {
		return slice
	}

	diff := targetWidth - w
	var left, right int
	switch align {
	case truncate.AlignRight:
		left, right = diff, 0
	case truncate.AlignCenter:
		left, right = diff/2, diff-diff/2
	default:
		left, right = 0, diff
	}

	var b strings.Builder
	b.Grow(left + len(slice) + right)
	for i := 0; i < left; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(slice)
	for i := 0; i < right; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}

// defaultPadder backs the package-level functions. It is never mutated,
// so sharing it across goroutines is safe.
var defaultPadder = New()

// String pads s with spaces to targetWidth columns using the default
// padder.
func String(s string, targetWidth int, align truncate.Alignment, truncateToFit bool) string {
	return defaultPadder.String(s, targetWidth, align, truncateToFit)
}

// Left pins s to the left edge of a cell exactly targetWidth columns
// wide, truncating from the end when it is too wide.
func Left(s string, targetWidth int) string {
	return defaultPadder.String(s, targetWidth, truncate.AlignLeft, true)
}

// Center centers s in a cell exactly targetWidth columns wide, truncating
// from both ends when it is too wide.
func Center(s string, targetWidth int) string {
	return defaultPadder.String(s, targetWidth, truncate.AlignCenter, true)
}

// Right pins s to the right edge of a cell exactly targetWidth columns
// wide, truncating from the start when it is too wide.
func Right(s string, targetWidth int) string {
	return defaultPadder.String(s, targetWidth, truncate.AlignRight, true)
}
