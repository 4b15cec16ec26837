package normalize

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// The platform API is not consistent about field naming: the same field
// arrives as car_brand from one endpoint and carBrand from another. Every
// extraction goes through lookup, which tries the canonical key and its
// naming variants from one place, so tolerating a new field never means
// another ad-hoc fallback chain at a call site.

// lookup returns the value for key, trying the key as given, then its
// lowerCamel form, then its snake_case form.
func lookup(data map[string]any, key string) (any, bool) {
	if v, ok := data[key]; ok {
		return v, true
	}
	if v, ok := data[camel(key)]; ok {
		return v, true
	}
	if v, ok := data[snake(key)]; ok {
		return v, true
	}
	return nil, false
}

// camel converts snake_case to lowerCamel ("car_brand" → "carBrand").
func camel(key string) string {
	parts := strings.Split(key, "_")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// snake converts lowerCamel to snake_case ("carBrand" → "car_brand").
func snake(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// str extracts a string field; missing or uncastable values become "".
func str(data map[string]any, key string) string {
	v, ok := lookup(data, key)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// strOr extracts a string field with a non-empty default.
func strOr(data map[string]any, key, fallback string) string {
	if s := str(data, key); s != "" {
		return s
	}
	return fallback
}

// uintField extracts an id-like field; missing or malformed values become 0.
// JSON numbers decode as float64, but ids also show up as strings, so the
// coercion is deliberately loose.
func uintField(data map[string]any, key string) uint {
	v, ok := lookup(data, key)
	if !ok {
		return 0
	}
	n, err := cast.ToUintE(v)
	if err != nil {
		return 0
	}
	return n
}

// intField extracts a count field; missing or malformed values become 0.
func intField(data map[string]any, key string) int {
	v, ok := lookup(data, key)
	if !ok {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

// floatField extracts a price-like field; missing or malformed values
// become 0.
func floatField(data map[string]any, key string) float64 {
	v, ok := lookup(data, key)
	if !ok {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// timeField extracts a timestamp field through ParseTimestamp, inheriting
// its never-fail contract.
func timeField(data map[string]any, key string) time.Time {
	return ParseTimestamp(str(data, key))
}

// object extracts a nested JSON object, or nil when the field is absent or
// not an object.
func object(data map[string]any, key string) map[string]any {
	v, ok := lookup(data, key)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}
