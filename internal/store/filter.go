package store

// Predicate is one field constraint in a filter. Exactly one of the value
// forms is set: Value for equality, Values for set membership.
type Predicate struct {
	Field  string
	Value  any
	Values []any
	isIn   bool
}

// In reports whether the predicate is a set-membership constraint.
func (p Predicate) In() bool {
	return p.isIn
}

// Matches reports whether a column value satisfies the predicate.
func (p Predicate) Matches(value any) bool {
	if p.isIn {
		for _, v := range p.Values {
			if value == v {
				return true
			}
		}
		return false
	}
	return value == p.Value
}

// Filter is a conjunction of field predicates. The zero value matches every
// record. Filters are value types composed with Eq and In.
type Filter []Predicate

// Eq appends an equality predicate.
func (f Filter) Eq(field string, value any) Filter {
	return append(f, Predicate{Field: field, Value: value})
}

// In appends a set-membership predicate.
func (f Filter) In(field string, values ...any) Filter {
	return append(f, Predicate{Field: field, Values: values, isIn: true})
}

// Where starts a filter with a single equality predicate.
func Where(field string, value any) Filter {
	return Filter{}.Eq(field, value)
}

// Matches reports whether a record satisfies every predicate.
func (f Filter) Matches(r Record) bool {
	for _, p := range f {
		if !p.Matches(r[p.Field]) {
			return false
		}
	}
	return true
}
