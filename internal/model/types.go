package model

import (
	"fmt"
	"sort"
	"strings"
)

// Category is the validation rule class a field belongs to.
type Category uint8

const (
	// CategoryUnclassified is the zero value: the field never errors.
	CategoryUnclassified Category = iota
	CategoryText
	CategoryNumeric
	CategoryFile
	CategoryDate
)

var categoryNames = map[Category]string{
	CategoryUnclassified: "unclassified",
	CategoryText:         "text",
	CategoryNumeric:      "numeric",
	CategoryFile:         "file",
	CategoryDate:         "date",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// ParseCategory resolves the textual form produced by Category.String. Matching
// is case-insensitive and ignores surrounding whitespace.
func ParseCategory(raw string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for category, name := range categoryNames {
		if name == needle {
			return category, nil
		}
	}
	return CategoryUnclassified, fmt.Errorf("model: unknown category %q", raw)
}

// ErrorKind separates missing values from values of the wrong shape.
type ErrorKind string

const (
	// ErrorKindRequired marks an empty or absent value for a category that
	// requires presence.
	ErrorKindRequired ErrorKind = "required"
	// ErrorKindTypeMismatch marks a present value that does not parse as the
	// category's expected shape.
	ErrorKindTypeMismatch ErrorKind = "type_mismatch"
)

// FieldError is a per-field validation failure. A nil *FieldError means the
// field is valid.
type FieldError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return e.Field + ": " + e.Message
}

// ErrorMap records the current failure per field. Keys are exactly the fields
// that were validated; nil entries are valid fields.
type ErrorMap map[string]*FieldError

// Valid reports whether every entry is nil.
func (m ErrorMap) Valid() bool {
	for _, err := range m {
		if err != nil {
			return false
		}
	}
	return true
}

// Invalid returns the sorted identifiers carrying an error.
func (m ErrorMap) Invalid() []string {
	var out []string
	for id, err := range m {
		if err != nil {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Messages flattens the map into identifier -> message, skipping valid fields.
func (m ErrorMap) Messages() map[string]string {
	out := make(map[string]string, len(m))
	for id, err := range m {
		if err != nil {
			out[id] = err.Message
		}
	}
	return out
}

// Clone returns a shallow copy; FieldError values are never mutated in place.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for id, err := range m {
		out[id] = err
	}
	return out
}

// TouchedSet marks fields the user has interacted with.
type TouchedSet map[string]struct{}

// Touch adds the identifiers to the set.
func (s TouchedSet) Touch(ids ...string) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Has reports membership. A nil set contains nothing.
func (s TouchedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s TouchedSet) Clone() TouchedSet {
	out := make(TouchedSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted lists the members in lexical order.
func (s TouchedSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Verdict is the result of a full-form validation pass.
type Verdict struct {
	Errors   ErrorMap   `json:"errors"`
	Touched  TouchedSet `json:"-"`
	AllValid bool       `json:"allValid"`
}
