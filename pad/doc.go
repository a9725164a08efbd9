// Package pad aligns text inside fixed-width cells by adding spaces,
// cutting the text down first when asked to.
//
// Widths are display columns, not bytes or runes, so East Asian
// characters count as two and combining marks as zero. Measurement and
// truncation are delegated to a truncate.Truncator.
//
// # Basic Usage
//
// The package-level helpers produce cells of exactly the requested
// width:
//
//	pad.Left("on", 5)      // "on   "
//	pad.Right("on", 5)     // "   on"
//	pad.Center("on", 5)    // " on  "
//	pad.Left("你好吗", 5)  // "你好 "
//
// The alignment names where the text sits, so AlignLeft pads on the
// right and AlignRight pads on the left. Text wider than the cell is
// truncated on the side the padding would have gone.
//
// # Optional Truncation
//
// Padder.String exposes the truncation switch. With truncateToFit set
// to false, text at or over the target width passes through untouched:
//
//	p := pad.New()
//	p.String("overflow", 4, truncate.AlignLeft, false) // "overflow"
//	p.String("overflow", 4, truncate.AlignLeft, true)  // "over"
//
// # Custom Measurement
//
// Builder methods swap the underlying truncator, for example to count
// ambiguous-width characters as wide:
//
//	tr := truncate.New().WithOracle(width.NewTerminalEastAsian())
//	p := pad.New().WithTruncator(tr)
package pad
