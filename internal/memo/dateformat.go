package memo

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateFormat is the Obsidian daily-notes default.
const DefaultDateFormat = "YYYY-MM-DD"

// unsupportedTokens are moment.js tokens FormatDate cannot render. Their
// presence anywhere in a template forces the default layout.
var unsupportedTokens = []string{
	"dddd", "ddd", "MMMM", "MMM", "wo", "ww", "WW", "Do", "Mo", "Qo", "Q", "W", "w",
}

// FormatDate renders date with a template built from the YYYY, MM and DD
// tokens. Templates that use any other date token are replaced by
// DefaultDateFormat as a whole; an empty template renders as "".
func FormatDate(template string, date time.Time) string {
	if template == "" {
		return ""
	}
	if hasUnsupportedToken(template) {
		template = DefaultDateFormat
	}
	return strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", date.Year()),
		"MM", fmt.Sprintf("%02d", int(date.Month())),
		"DD", fmt.Sprintf("%02d", date.Day()),
	).Replace(template)
}

func hasUnsupportedToken(template string) bool {
	for _, tok := range unsupportedTokens {
		if strings.Contains(template, tok) {
			return true
		}
	}
	return false
}
