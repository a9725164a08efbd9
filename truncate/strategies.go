package truncate

import "math"

// End keeps the longest prefix of s that displays in at most maxWidth
// columns. It returns the prefix and its exact display width.
//
// The prefix always ends on a unit boundary. Zero-width units that follow
// the last visible unit are kept, so a trailing combining mark stays with
// the character it modifies.
func (t *Truncator) End(s string, maxWidth int) (string, int) {
	if maxWidth <= 0 {
		return "", 0
	}

	// Every unit boundary is a cut candidate paired with the width of the
	// text before it; the winner is the last candidate within the limit.
	cut, cutWidth := 0, 0
	w := 0
	rest := s
	for {
		if w > maxWidth {
			break
		}
		cut, cutWidth = len(s)-len(rest), w
		if rest == "" {
			break
		}
		var unit string
		unit, rest = t.seg.FirstUnit(rest)
		w = saturatingAdd(w, t.unitWidth(unit))
	}
	return s[:cut], cutWidth
}

// Start keeps the longest suffix of s that displays in at most maxWidth
// columns. It returns the suffix and its exact display width.
//
// The suffix always begins on a unit boundary and never with a zero-width
// unit: a combining mark whose base character was trimmed goes with it
// instead of attaching to whatever precedes the result.
func (t *Truncator) Start(s string, maxWidth int) (string, int) {
	if maxWidth <= 0 {
		return "", 0
	}
	total := t.Width(s)
	if total <= maxWidth {
		return s, total
	}

	w := 0
	rest := s
	for rest != "" {
		unit, next := t.seg.FirstUnit(rest)
		uw := t.unitWidth(unit)
		if uw > 0 {
			if suffix := total - w; suffix <= maxWidth {
				return s[len(s)-len(rest):], suffix
			}
		}
		w = saturatingAdd(w, uw)
		rest = next
	}
	return "", 0
}

// Centered keeps a contiguous middle slice of s that displays in at most
// maxWidth columns, removing roughly equal width from both ends. It
// returns the slice and its exact display width.
//
// Removal alternates between the ends, taking from whichever end has lost
// less width so far and preferring the end of the text on ties. Zero-width
// units that followed a removed leading unit are removed with it, while
// zero-width units that preceded a removed trailing unit stay with the
// kept text.
func (t *Truncator) Centered(s string, maxWidth int) (string, int) {
	if maxWidth <= 0 {
		return "", 0
	}

	total := 0
	widest := 0
	rest := s
	for rest != "" {
		var unit string
		unit, rest = t.seg.FirstUnit(rest)
		uw := t.unitWidth(unit)
		total = saturatingAdd(total, uw)
		if uw > widest {
			widest = uw
		}
	}
	if total <= maxWidth {
		return s, total
	}

	need := total - maxWidth
	// Neither end removes need/2 plus a full unit or more, so windows of
	// that width cannot starve the merge.
	budget := need/2 + widest
	head, tail := t.centerWindows(s, budget)

	removedStart, removedEnd := 0, 0
	removed := 0
	h, e := 0, 0
	for removed < need {
		canStart := h < len(head)
		canEnd := e < len(tail)
		if !canStart && !canEnd {
			return "", 0
		}
		if canEnd && (removedEnd <= removedStart || !canStart) {
			e++
			uw := tail[len(tail)-e].cols
			removedEnd = saturatingAdd(removedEnd, uw)
			removed = saturatingAdd(removed, uw)
		} else {
			uw := head[h].cols
			h++
			removedStart = saturatingAdd(removedStart, uw)
			removed = saturatingAdd(removed, uw)
		}
	}

	startIdx := 0
	if h > 0 {
		if h < len(head) {
			startIdx = head[h].offset
		} else {
			startIdx = len(s)
		}
	}
	endIdx := len(s)
	if e > 0 {
		endIdx = tail[len(tail)-e].offset
	}
	return s[startIdx:endIdx], total - removed
}

// unitMark locates one visible unit: the byte offset where it starts and
// the columns it occupies.
type unitMark struct {
	offset int
	cols   int
}

// centerWindows collects the visible units a centered cut may remove.
// head holds leading units whose preceding width is under budget; tail
// holds the shortest trailing run whose combined width reaches budget,
// or every visible unit when the text is narrower than that.
func (t *Truncator) centerWindows(s string, budget int) (head, tail []unitMark) {
	w := 0
	tailWidth := 0
	front := 0
	rest := s
	for rest != "" {
		unit, next := t.seg.FirstUnit(rest)
		uw := t.unitWidth(unit)
		if uw > 0 {
			mark := unitMark{offset: len(s) - len(rest), cols: uw}
			if w < budget {
				head = append(head, mark)
			}
			tail = append(tail, mark)
			tailWidth += uw
			for tailWidth-tail[front].cols >= budget {
				tailWidth -= tail[front].cols
				front++
			}
		}
		w = saturatingAdd(w, uw)
		rest = next
	}
	return head, tail[front:]
}

// EndWithTail truncates s from the end and appends tail when truncation
// occurs, keeping the combined width within maxWidth. When maxWidth
// leaves no room for the tail, the tail is dropped. The result can fall
// short of maxWidth when a wide unit straddles the cut.
func (t *Truncator) EndWithTail(s string, maxWidth int, tail string) string {
	if t.Fits(s, maxWidth) {
		return s
	}
	tailWidth := t.Width(tail)
	if maxWidth <= tailWidth {
		out, _ := t.End(s, maxWidth)
		return out
	}
	out, _ := t.End(s, maxWidth-tailWidth)
	return out + tail
}

// StartWithTail truncates s from the start and prepends tail when
// truncation occurs, keeping the combined width within maxWidth. When
// maxWidth leaves no room for the tail, the tail is dropped.
func (t *Truncator) StartWithTail(s string, maxWidth int, tail string) string {
	if t.Fits(s, maxWidth) {
		return s
	}
	tailWidth := t.Width(tail)
	if maxWidth <= tailWidth {
		out, _ := t.Start(s, maxWidth)
		return out
	}
	out, _ := t.Start(s, maxWidth-tailWidth)
	return tail + out
}

// saturatingAdd sums non-negative widths, clamping instead of wrapping.
func saturatingAdd(a, b int) int {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxInt
}
