package normalize

import (
	"strings"
	"time"
)

// Layouts tried in order. The first group is the standard ISO-8601 family;
// the last two are fixed fallbacks for offsets written without a colon.
var (
	isoLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05",
	}
	fallbackLayouts = []string{
		"2006-01-02T15:04:05.999999-0700",
		"2006-01-02T15:04:05-0700",
	}
)

// ParseTimestamp parses the ISO-8601-ish timestamp strings the platform API
// produces. The input is normalized first: a trailing 'Z' becomes '+00:00'
// and fractional seconds are truncated to six digits (some payloads carry
// nine). If nothing parses, or the input is empty, the current time is
// returned. This lossy fallback is intentional: record construction must
// never fail on a bad timestamp, so an unparseable value degrades to "now"
// instead of an error.
func ParseTimestamp(value string) time.Time {
	if value == "" {
		return time.Now()
	}

	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	value = truncateFraction(value)

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Now()
}

// truncateFraction caps fractional seconds at six digits, keeping whatever
// follows the digits (the timezone offset) verbatim.
func truncateFraction(value string) string {
	i := strings.Index(value, ".")
	if i < 0 {
		return value
	}
	rest := value[i+1:]
	j := 0
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	digits := rest[:j]
	if len(digits) > 6 {
		digits = digits[:6]
	}
	return value[:i+1] + digits + rest[j:]
}
