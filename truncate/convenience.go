package truncate

// defaultTruncator backs the package-level functions. It is never
// mutated, so sharing it across goroutines is safe.
var defaultTruncator = New()

// Width returns the display width of s using grapheme cluster units and
// terminal width rules.
func Width(s string) int {
	return defaultTruncator.Width(s)
}

// Fits reports whether s displays in at most maxWidth columns.
func Fits(s string, maxWidth int) bool {
	return defaultTruncator.Fits(s, maxWidth)
}

// End keeps the longest prefix of s that fits in maxWidth columns,
// returning it with its exact display width.
func End(s string, maxWidth int) (string, int) {
	return defaultTruncator.End(s, maxWidth)
}

// Start keeps the longest suffix of s that fits in maxWidth columns,
// returning it with its exact display width.
func Start(s string, maxWidth int) (string, int) {
	return defaultTruncator.Start(s, maxWidth)
}

// Centered keeps a middle slice of s that fits in maxWidth columns,
// returning it with its exact display width.
func Centered(s string, maxWidth int) (string, int) {
	return defaultTruncator.Centered(s, maxWidth)
}

// Aligned truncates s so that the part selected by align survives.
func Aligned(s string, maxWidth int, align Alignment) (string, int) {
	return defaultTruncator.Aligned(s, maxWidth, align)
}

// EndWithTail truncates s from the end to at most maxWidth columns,
// appending tail when truncation occurs.
func EndWithTail(s string, maxWidth int, tail string) string {
	return defaultTruncator.EndWithTail(s, maxWidth, tail)
}

// StartWithTail truncates s from the start to at most maxWidth columns,
// prepending tail when truncation occurs.
func StartWithTail(s string, maxWidth int, tail string) string {
	return defaultTruncator.StartWithTail(s, maxWidth, tail)
}
