package schema

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldKind enumerates the value shapes a table column may hold.
type FieldKind string

const (
	KindUUID       FieldKind = "uuid"
	KindString     FieldKind = "string"
	KindText       FieldKind = "text"
	KindDateTime   FieldKind = "datetime"
	KindEnum       FieldKind = "enum"
	KindInt        FieldKind = "int"
	KindStringList FieldKind = "string_list"
	KindUUIDList   FieldKind = "uuid_list"
	KindFloatList  FieldKind = "float_list"
)

type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	MaxLen   int
	Min      int
	Max      int
	Values   []string
	Default  any
}

// Table is the declarative validation spec for one record table.
type Table struct {
	Name   string
	Fields []Field

	index map[string]*Field
}

func NewTable(name string, fields ...Field) *Table {
	t := &Table{Name: name, Fields: fields, index: make(map[string]*Field, len(fields))}
	for i := range t.Fields {
		f := &t.Fields[i]
		t.index[f.Name] = f
	}
	return t
}

func (t *Table) Field(name string) (*Field, bool) {
	f, ok := t.index[name]
	return f, ok
}

func (t *Table) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}
	return names
}

// FieldErrors maps field name to a validation failure message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e[name]))
	}
	return strings.Join(parts, "; ")
}

// Validate checks a full payload against the table spec. Unknown fields are
// dropped, defaults are applied, and every required field must be present.
// The returned payload contains only declared fields.
func (t *Table) Validate(payload map[string]any) (map[string]any, FieldErrors) {
	return t.validate(payload, false)
}

// ValidatePartial checks a partial payload (updates). Required fields may be
// absent, but present fields must still be well-formed. Defaults are not
// applied.
func (t *Table) ValidatePartial(payload map[string]any) (map[string]any, FieldErrors) {
	return t.validate(payload, true)
}

func (t *Table) validate(payload map[string]any, partial bool) (map[string]any, FieldErrors) {
	out := make(map[string]any, len(t.Fields))
	errs := make(FieldErrors)

	for i := range t.Fields {
		f := &t.Fields[i]
		value, present := payload[f.Name]
		if present && value == nil {
			present = false
		}
		if !present {
			if partial {
				continue
			}
			if f.Default != nil {
				out[f.Name] = f.Default
				continue
			}
			if f.Required {
				errs[f.Name] = "required"
			}
			continue
		}

		normalized, err := f.check(value)
		if err != "" {
			errs[f.Name] = err
			continue
		}
		out[f.Name] = normalized
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func (f *Field) check(value any) (any, string) {
	switch f.Kind {
	case KindUUID:
		s, ok := value.(string)
		if !ok {
			return nil, "expected a string"
		}
		if _, err := uuid.Parse(s); err != nil {
			return nil, "invalid uuid"
		}
		return s, ""

	case KindString, KindText:
		s, ok := value.(string)
		if !ok {
			return nil, "expected a string"
		}
		if f.Required && strings.TrimSpace(s) == "" {
			return nil, "must not be empty"
		}
		if f.MaxLen > 0 && len(s) > f.MaxLen {
			return nil, fmt.Sprintf("exceeds %d characters", f.MaxLen)
		}
		return s, ""

	case KindDateTime:
		s, ok := value.(string)
		if !ok {
			return nil, "expected a string"
		}
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return nil, "invalid timestamp, expected RFC 3339"
		}
		return s, ""

	case KindEnum:
		s, ok := value.(string)
		if !ok {
			return nil, "expected a string"
		}
		for _, v := range f.Values {
			if s == v {
				return s, ""
			}
		}
		return nil, fmt.Sprintf("must be one of: %s", strings.Join(f.Values, ", "))

	case KindInt:
		n, ok := asInt(value)
		if !ok {
			return nil, "expected an integer"
		}
		if f.Min != 0 || f.Max != 0 {
			if n < f.Min || n > f.Max {
				return nil, fmt.Sprintf("must be between %d and %d", f.Min, f.Max)
			}
		}
		return n, ""

	case KindStringList:
		items, ok := asList(value)
		if !ok {
			return nil, "expected a list of strings"
		}
		strs := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, "expected a list of strings"
			}
			strs = append(strs, s)
		}
		return strs, ""

	case KindUUIDList:
		items, ok := asList(value)
		if !ok {
			return nil, "expected a list of uuids"
		}
		strs := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, "expected a list of uuids"
			}
			if _, err := uuid.Parse(s); err != nil {
				return nil, "invalid uuid in list"
			}
			strs = append(strs, s)
		}
		return strs, ""

	case KindFloatList:
		items, ok := asList(value)
		if !ok {
			return nil, "expected a list of numbers"
		}
		floats := make([]float64, 0, len(items))
		for _, item := range items {
			switch n := item.(type) {
			case float64:
				floats = append(floats, n)
			case int:
				floats = append(floats, float64(n))
			default:
				return nil, "expected a list of numbers"
			}
		}
		return floats, ""
	}

	return nil, fmt.Sprintf("unsupported field kind: %s", f.Kind)
}

func asInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func asList(value any) ([]any, bool) {
	switch items := value.(type) {
	case []any:
		return items, true
	case []string:
		out := make([]any, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
