package model

import (
	"testing"
	"time"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		kind ValueKind
		text string
	}{
		{name: "nil", raw: nil, kind: ValueAbsent, text: ""},
		{name: "string", raw: "John", kind: ValueText, text: "John"},
		{name: "float", raw: 42.5, kind: ValueNumber, text: "42.5"},
		{name: "int", raw: 7, kind: ValueNumber, text: "7"},
		{name: "file ref", raw: FileRef{Name: "cv.pdf"}, kind: ValueFile, text: "cv.pdf"},
		{name: "nil file pointer", raw: (*FileRef)(nil), kind: ValueFile, text: ""},
		{name: "decoded descriptor", raw: map[string]any{"name": "cv.pdf", "size": float64(10)}, kind: ValueFile, text: "cv.pdf"},
		{name: "map without name", raw: map[string]any{"size": 1}, kind: ValueText, text: "map[size:1]"},
		{name: "zero time", raw: time.Time{}, kind: ValueAbsent, text: ""},
		{name: "time", raw: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), kind: ValueDate, text: "2024-01-02T00:00:00Z"},
		{name: "stringer", raw: stringer{}, kind: ValueText, text: "stringer"},
		{name: "slice", raw: []int{1, 2}, kind: ValueText, text: "[1 2]"},
		{name: "passthrough", raw: Date("2024-01-01"), kind: ValueDate, text: "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromAny(tt.raw)
			if got.Kind() != tt.kind {
				t.Fatalf("kind: want %s got %s", tt.kind, got.Kind())
			}
			if got.String() != tt.text {
				t.Fatalf("text: want %q got %q", tt.text, got.String())
			}
		})
	}
}

func TestFieldValueAccessors(t *testing.T) {
	if _, ok := NumericText("12").Float(); ok {
		t.Fatalf("numeric text must not report a parsed float")
	}
	if f, ok := Number(12).Float(); !ok || f != 12 {
		t.Fatalf("unexpected float: %v %v", f, ok)
	}
	if _, ok := Text("x").FileRef(); ok {
		t.Fatalf("text must not report a file")
	}
	ref, ok := FromAny(map[string]any{"name": "a.txt", "size": float64(3)}).FileRef()
	if !ok || ref.Size != 3 || !ref.Present() {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	if NoFile().IsAbsent() {
		t.Fatalf("an empty file input is present but empty")
	}
	if (FileRef{Name: "  "}).Present() {
		t.Fatalf("blank names are not files")
	}
}
