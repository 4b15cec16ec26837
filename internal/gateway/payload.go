package gateway

// Payload is a decoded response body: a JSON object, an array, or nothing at
// all after a degraded call. Helpers absorb the object-or-array ambiguity of
// the API so repositories do not branch on payload shape.
type Payload struct {
	value any
}

// IsEmpty reports whether the payload carries no usable data. A degraded
// call, an empty array and an empty object are all empty; callers use this
// instead of error handling.
func (p Payload) IsEmpty() bool {
	switch v := p.value.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// Object returns the payload as a single JSON object.
func (p Payload) Object() (map[string]any, bool) {
	m, ok := p.value.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	return m, true
}

// Objects flattens the payload into a list of JSON objects: an array yields
// its object elements (non-objects are skipped), a single object yields a
// one-element list, anything else yields nothing.
func (p Payload) Objects() []map[string]any {
	switch v := p.value.(type) {
	case []any:
		objects := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok && len(m) > 0 {
				objects = append(objects, m)
			}
		}
		return objects
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		return []map[string]any{v}
	default:
		return nil
	}
}
