// Package width measures the display width of text in terminal columns.
//
// Width here means rendered columns, not bytes or runes: East Asian wide
// characters occupy two columns, combining marks occupy zero, and most
// other characters occupy one.
//
// # Oracle
//
// The Oracle interface reports the width of one atomic unit at a time:
//
//	oracle := width.NewTerminal()
//	cols, ok := oracle.UnitWidth("你")   // 2, true
//	cols, ok = oracle.UnitWidth("\t")    // 0, false (no assigned width)
//
// ok is false for units with no assigned width, such as control
// characters. Callers choose what those cost; truncate.Truncator counts
// them as one column unless configured otherwise.
//
// # Terminal
//
// Terminal is the default Oracle, backed by go-runewidth. Use
// NewTerminalEastAsian for legacy CJK terminals where East Asian
// Ambiguous characters render two columns wide:
//
//	oracle := width.NewTerminalEastAsian()
//	cols, _ := oracle.UnitWidth("…")     // 2 instead of 1
//
// For one-off measurement of a whole string, use the convenience
// function:
//
//	cols := width.String("日本語")       // 6
//
// Inputs are assumed to be plain text; ANSI escape sequences are measured
// like any other characters.
package width
