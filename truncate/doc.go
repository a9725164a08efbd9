// Package truncate cuts text to fit a display width measured in terminal
// columns.
//
// Truncating by bytes or runes breaks down as soon as text leaves ASCII:
// an East Asian character renders two columns wide, a combining mark
// renders zero, and a cut inside a grapheme cluster corrupts the text.
// This package budgets by columns and only cuts on unit boundaries.
//
// # Strategies
//
// Three cut strategies are available:
//
//   - End: keep a prefix, trimming from the end (AlignLeft)
//   - Centered: keep a middle slice, trimming from both ends (AlignCenter)
//   - Start: keep a suffix, trimming from the start (AlignRight)
//
// Every strategy returns the surviving slice together with its exact
// display width, which can be narrower than the limit when a wide unit
// straddles the cut.
//
// # Basic Usage
//
// Create a truncator and cut text:
//
//	tr := truncate.New()
//	out, w := tr.End("你好吗", 5)        // "你好", 4
//	out, w = tr.Start("你好吗", 4)       // "好吗", 4
//	out, w = tr.Centered("abcdef", 4)   // "bcde", 4
//
// Or dispatch by alignment:
//
//	out, w := tr.Aligned(text, 10, truncate.AlignRight)
//
// # Custom Units and Widths
//
// By default text splits into grapheme clusters and measures with
// terminal width rules. Both are configurable:
//
//	tr := truncate.New().
//	    WithSegmenter(segment.NewRunes()).
//	    WithOracle(width.NewTerminalEastAsian())
//
// WithUndefinedWidth sets the columns charged for units the oracle cannot
// measure, such as control characters. The default is one column; set
// zero to treat them as invisible:
//
//	tr := truncate.New().WithUndefinedWidth(0)
//
// # Convenience Functions
//
// For one-off calls, package-level functions share a default truncator:
//
//	out, w := truncate.End(text, 80)
//	cols := truncate.Width(text)
//	cell := truncate.EndWithTail(text, 20, "…")
//
// # Guarantees
//
// Results are contiguous subslices of the input taken on unit boundaries,
// so valid input stays valid UTF-8 and no allocation occurs. The returned
// width never exceeds the limit, and a limit of zero or less yields the
// empty string even for inputs that display at zero width.
package truncate
