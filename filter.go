package casb

import "encoding/json"

// Operator is a filter comparison operator understood by the portal.
type Operator string

const (
	OpEquals           Operator = "eq"
	OpNotEquals        Operator = "neq"
	OpContains         Operator = "contains"
	OpNotContains      Operator = "ncontains"
	OpStartsWith       Operator = "startswith"
	OpDoesNotStartWith Operator = "doesnotstartwith"
	OpText             Operator = "text"
)

// Clause is one field/operator/value constraint in a list query.
type Clause struct {
	Field    string
	Operator Operator
	Value    any
}

// FilterSet is an ordered sequence of clauses combined with implicit
// AND. Clauses are appended in the declaration order of the originating
// filter parameters; the order has no semantic weight. A field may
// carry more than one clause when the caller supplies logically
// distinct constraints (an eq and a neq on the same field stay
// separate, never merged into one).
type FilterSet struct {
	clauses []Clause
}

// Add appends one clause.
func (f *FilterSet) Add(field string, op Operator, value any) {
	f.clauses = append(f.clauses, Clause{Field: field, Operator: op, Value: value})
}

// Empty reports whether the set holds no clause. An empty set means no
// constraint at all: the filters query parameter is omitted, which is
// distinct from sending an empty filter object.
func (f *FilterSet) Empty() bool {
	return len(f.clauses) == 0
}

// Clauses returns the clauses in insertion order.
func (f *FilterSet) Clauses() []Clause {
	out := make([]Clause, len(f.clauses))
	copy(out, f.clauses)
	return out
}

// MarshalJSON serializes the set into the portal's nested filter
// grammar: one object keyed by field, each field holding an
// operator-to-value object. Clauses on the same field merge under one
// field key. The composite structure is built directly and marshaled in
// a single pass.
func (f FilterSet) MarshalJSON() ([]byte, error) {
	merged := make(map[string]map[Operator]any, len(f.clauses))
	for _, c := range f.clauses {
		ops, ok := merged[c.Field]
		if !ok {
			ops = make(map[Operator]any, 1)
			merged[c.Field] = ops
		}
		ops[c.Operator] = c.Value
	}
	return json.Marshal(merged)
}

// addEq appends an eq clause when values are present.
func addEq[V any](fs *FilterSet, field string, values []V) {
	if len(values) > 0 {
		fs.Add(field, OpEquals, values)
	}
}

// addNeq appends a neq clause when values are present.
func addNeq[V any](fs *FilterSet, field string, values []V) {
	if len(values) > 0 {
		fs.Add(field, OpNotEquals, values)
	}
}

// mapEnumLabels translates enum labels into their wire ordinals. A
// label outside the closed set fails validation before any network
// call; the ordinal maps themselves are total over the declared
// constants.
func mapEnumLabels[L ~string](name string, labels []L, ordinals map[L]int) ([]int, error) {
	out := make([]int, 0, len(labels))
	for _, label := range labels {
		ordinal, ok := ordinals[label]
		if !ok {
			return nil, newValidationError("unknown %s %q", name, label)
		}
		out = append(out, ordinal)
	}
	return out, nil
}
