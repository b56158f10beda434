package memo

import "time"

// FormatEntry renders a memo as a Markdown list item stamped with the
// 24-hour wall-clock time of now, e.g. "- 09:05 text".
func FormatEntry(text string, now time.Time) string {
	return "- " + now.Format("15:04") + " " + text
}
