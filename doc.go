// Package textkit provides utilities for fitting text to terminal columns.
//
// textkit measures text in display columns rather than bytes or runes, so
// East Asian characters count as two columns, combining marks as zero, and
// emoji sequences as the width of the glyph a terminal draws. Each
// subpackage can be used independently:
//
//   - width: Display column measurement backed by Unicode width tables
//   - segment: Splitting text into grapheme clusters or runes
//   - truncate: Width-aware truncation from the end, start, or both ends
//   - pad: Space padding and alignment inside fixed-width cells
//
// # Quick Start
//
// Truncating to a column budget:
//
//	import "github.com/randalmurphal/textkit/truncate"
//	s, w := truncate.End("你好吗", 5) // "你好", 4
//
// Padding a table cell:
//
//	import "github.com/randalmurphal/textkit/pad"
//	cell := pad.Left("你好吗", 10) // "你好吗    "
//
// Measuring width:
//
//	import "github.com/randalmurphal/textkit/width"
//	cols := width.String("naïve 日本語") // 12
//
// # Design Philosophy
//
// textkit follows these principles:
//
//   - Never cut inside a UTF-8 sequence or a grapheme cluster
//   - Each package usable independently
//   - Stable, semver-friendly API
//   - Sensible defaults with full configurability
//   - Interfaces for extensibility, concrete types for simplicity
package textkit
