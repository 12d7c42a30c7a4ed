package util //nolint:revive // package name util hosts shared formatting helpers for CLI output

import (
	"fmt"
	"time"
)

// FormatRelativeAge renders how long ago t happened relative to now, the way
// activity feeds display timestamps. Future or zero times render as "—".
func FormatRelativeAge(now, t time.Time) string {
	if t.IsZero() || t.After(now) {
		return "—"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
