package filter

import "strings"

// Matches evaluates the expression against a raw document (field name to
// decoded JSON value). Used by backends without native query pushdown.
func (e Expression) Matches(fields map[string]any) bool {
	for _, c := range e.conditions {
		if !c.matches(fields[c.key]) {
			return false
		}
	}
	return true
}

func (c Condition) matches(v any) bool {
	switch c.kind {
	case KindSubstring:
		s, ok := v.(string)
		return ok && strings.Contains(strings.ToLower(s), strings.ToLower(c.match))
	case KindEquals:
		s, ok := v.(string)
		return ok && s == c.match
	case KindRange:
		f, ok := toFloat(v)
		if !ok {
			return false
		}
		if c.min != nil && f < *c.min {
			return false
		}
		if c.max != nil && f > *c.max {
			return false
		}
		return true
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
