// Package filter defines a store-agnostic filter expression for catalog
// queries. Handlers build expressions conditionally; each store backend
// translates them to its native query form or evaluates them in memory.
package filter

import "fmt"

// Expression is a conjunction of per-field conditions. The zero value (or
// an expression built from no conditions) matches every record.
type Expression struct {
	conditions []Condition
}

// NewExpression creates a filter Expression from the given conditions.
func NewExpression(conditions ...Condition) Expression {
	return Expression{conditions: conditions}
}

// Conditions returns the conditions in insertion order.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression imposes no constraint.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// Builder accumulates conditions; absent parameters simply add nothing.
type Builder struct {
	conditions []Condition
}

// NewBuilder starts an empty filter builder.
func NewBuilder() *Builder { return &Builder{} }

// Substring adds a case-insensitive substring match on key. Empty values
// are ignored.
func (b *Builder) Substring(key, value string) *Builder {
	if value != "" {
		b.conditions = append(b.conditions, Condition{key: key, kind: KindSubstring, match: value})
	}
	return b
}

// Equals adds an exact match on key. Empty values are ignored.
func (b *Builder) Equals(key, value string) *Builder {
	if value != "" {
		b.conditions = append(b.conditions, Condition{key: key, kind: KindEquals, match: value})
	}
	return b
}

// Range adds a numeric range on key with independently optional inclusive
// bounds. A nil/nil pair is ignored. Inverted bounds (min > max) are legal
// and match nothing.
func (b *Builder) Range(key string, min, max *float64) *Builder {
	if min == nil && max == nil {
		return b
	}
	b.conditions = append(b.conditions, Condition{key: key, kind: KindRange, min: min, max: max})
	return b
}

// Build returns the accumulated expression.
func (b *Builder) Build() Expression {
	return Expression{conditions: b.conditions}
}

// Kind discriminates condition variants.
type Kind int

const (
	// KindSubstring is a case-insensitive substring match on a text field.
	KindSubstring Kind = iota
	// KindEquals is an exact match on a text field.
	KindEquals
	// KindRange is a numeric range with optional inclusive bounds.
	KindRange
)

// Condition is a single filter clause on one field.
type Condition struct {
	key   string
	kind  Kind
	match string
	min   *float64
	max   *float64
}

// Key returns the field name the condition applies to.
func (c Condition) Key() string { return c.key }

// Kind returns the condition variant.
func (c Condition) Kind() Kind { return c.kind }

// Match returns the match value for substring and equality conditions.
func (c Condition) Match() string { return c.match }

// Min returns the inclusive lower bound, or nil.
func (c Condition) Min() *float64 { return c.min }

// Max returns the inclusive upper bound, or nil.
func (c Condition) Max() *float64 { return c.max }

func (c Condition) String() string {
	switch c.kind {
	case KindSubstring:
		return fmt.Sprintf("%s~%q", c.key, c.match)
	case KindEquals:
		return fmt.Sprintf("%s=%q", c.key, c.match)
	case KindRange:
		lo, hi := "-inf", "+inf"
		if c.min != nil {
			lo = fmt.Sprintf("%g", *c.min)
		}
		if c.max != nil {
			hi = fmt.Sprintf("%g", *c.max)
		}
		return fmt.Sprintf("%s=[%s,%s]", c.key, lo, hi)
	}
	return c.key
}
