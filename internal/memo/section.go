package memo

import "strings"

// InsertOffset returns the byte offset in content where a new entry belongs
// for the given anchor heading.
//
// With an empty anchor, or an anchor that never appears as a whole trimmed
// line, the offset is len(content). Otherwise it is the start of the first
// heading after the anchor whose level is at most the anchor's level, so
// deeper sub-headings stay inside the anchor's section. When no such heading
// follows, the section runs to the end of content.
func InsertOffset(content, anchor string) int {
	anchor = strings.TrimSpace(anchor)
	if anchor == "" {
		return len(content)
	}
	level := headingLevel(anchor)

	matched := false
	for pos := 0; pos < len(content); {
		next := len(content)
		if i := strings.IndexByte(content[pos:], '\n'); i >= 0 {
			next = pos + i + 1
		}
		line := strings.TrimSpace(content[pos:next])

		switch {
		case !matched:
			matched = line == anchor
		case strings.HasPrefix(line, "#") && headingLevel(line) <= level:
			return pos
		}
		pos = next
	}
	return len(content)
}

// headingLevel counts the leading '#' characters of s.
func headingLevel(s string) int {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	return n
}
