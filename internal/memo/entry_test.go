package memo

import (
	"testing"
	"time"
)

func TestFormatEntry(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 5, 59, 0, time.Local)
	if got := FormatEntry("buy milk", now); got != "- 09:05 buy milk" {
		t.Errorf("got %q", got)
	}
}

func TestFormatEntry_TwentyFourHour(t *testing.T) {
	now := time.Date(2024, time.January, 15, 23, 45, 0, 0, time.Local)
	if got := FormatEntry("late", now); got != "- 23:45 late" {
		t.Errorf("got %q", got)
	}
}

func TestFormatEntry_TextVerbatim(t *testing.T) {
	now := time.Date(2024, time.January, 15, 7, 0, 0, 0, time.Local)
	text := "#tag [[link]] **bold** <b>html</b> 日本語"
	if got := FormatEntry(text, now); got != "- 07:00 "+text {
		t.Errorf("got %q", got)
	}
}
