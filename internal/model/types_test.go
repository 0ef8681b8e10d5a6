package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCategory(t *testing.T) {
	for _, category := range []Category{CategoryUnclassified, CategoryText, CategoryNumeric, CategoryFile, CategoryDate} {
		got, err := ParseCategory(" " + category.String() + " ")
		if err != nil || got != category {
			t.Fatalf("round trip %s: got %s, %v", category, got, err)
		}
	}
	if got, err := ParseCategory("NUMERIC"); err != nil || got != CategoryNumeric {
		t.Fatalf("expected case-insensitive match, got %s, %v", got, err)
	}
	if _, err := ParseCategory("email"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if got := Category(42).String(); got != "category(42)" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

func TestErrorMap(t *testing.T) {
	m := ErrorMap{
		"b": {Field: "b", Kind: ErrorKindRequired, Message: "required"},
		"a": {Field: "a", Kind: ErrorKindTypeMismatch, Message: "invalid date"},
		"c": nil,
	}
	if m.Valid() {
		t.Fatalf("expected invalid map")
	}
	if diff := cmp.Diff([]string{"a", "b"}, m.Invalid()); diff != "" {
		t.Fatalf("invalid mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"a": "invalid date", "b": "required"}, m.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	clone := m.Clone()
	clone["c"] = &FieldError{Field: "c"}
	if m["c"] != nil {
		t.Fatalf("clone shares storage with the original")
	}
	if !(ErrorMap{"x": nil}).Valid() || !ErrorMap(nil).Valid() {
		t.Fatalf("nil entries and nil maps are valid")
	}
	if got := m["b"].Error(); got != "b: required" {
		t.Fatalf("unexpected error string %q", got)
	}
}

func TestTouchedSet(t *testing.T) {
	var empty TouchedSet
	if empty.Has("a") {
		t.Fatalf("nil set contains nothing")
	}
	set := make(TouchedSet)
	set.Touch("b", "a", "b")
	if diff := cmp.Diff([]string{"a", "b"}, set.Sorted()); diff != "" {
		t.Fatalf("sorted mismatch (-want +got):\n%s", diff)
	}
	clone := set.Clone()
	clone.Touch("c")
	if set.Has("c") {
		t.Fatalf("clone shares storage with the original")
	}
}
