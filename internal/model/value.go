package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueKind tags the runtime shape carried by a FieldValue. The shape never
// selects a rule; the schema category does.
type ValueKind uint8

const (
	ValueAbsent ValueKind = iota
	ValueText
	ValueNumber
	ValueFile
	ValueDate
)

func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "text"
	case ValueNumber:
		return "number"
	case ValueFile:
		return "file"
	case ValueDate:
		return "date"
	default:
		return "absent"
	}
}

// FileRef points at an uploaded or selected file. Only presence matters to
// validation.
type FileRef struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

// Present reports whether the reference names a file.
func (f FileRef) Present() bool {
	return strings.TrimSpace(f.Name) != ""
}

// FieldValue is the raw value of a single field.
type FieldValue struct {
	kind    ValueKind
	text    string
	number  float64
	numeric bool
	file    FileRef
}

// Absent returns a value for a field the host has no input for.
func Absent() FieldValue { return FieldValue{} }

// Text wraps free-form input.
func Text(s string) FieldValue { return FieldValue{kind: ValueText, text: s} }

// Number wraps an already parsed number.
func Number(f float64) FieldValue { return FieldValue{kind: ValueNumber, number: f, numeric: true} }

// NumericText wraps a numeric-looking string such as the contents of a number
// input. Parsing is deferred to validation.
func NumericText(s string) FieldValue { return FieldValue{kind: ValueNumber, text: s} }

// File wraps a file reference.
func File(ref FileRef) FieldValue { return FieldValue{kind: ValueFile, file: ref} }

// NoFile is a file input with nothing selected.
func NoFile() FieldValue { return FieldValue{kind: ValueFile} }

// Date wraps the string form of a date input.
func Date(s string) FieldValue { return FieldValue{kind: ValueDate, text: s} }

func (v FieldValue) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the host supplied nothing for the field.
func (v FieldValue) IsAbsent() bool { return v.kind == ValueAbsent }

// FileRef returns the wrapped reference and whether the value is a file.
func (v FieldValue) FileRef() (FileRef, bool) {
	if v.kind != ValueFile {
		return FileRef{}, false
	}
	return v.file, true
}

// Float returns the parsed number for values built with Number.
func (v FieldValue) Float() (float64, bool) {
	if v.kind != ValueNumber || !v.numeric {
		return 0, false
	}
	return v.number, true
}

// String renders the textual form of the value: the raw string for text,
// numeric text and dates, the formatted number, the file name, or "" when
// absent.
func (v FieldValue) String() string {
	switch v.kind {
	case ValueText, ValueDate:
		return v.text
	case ValueNumber:
		if v.numeric {
			return strconv.FormatFloat(v.number, 'f', -1, 64)
		}
		return v.text
	case ValueFile:
		return v.file.Name
	default:
		return ""
	}
}

// FromAny converts host-native values (decoded JSON, prompt answers) into a
// FieldValue. It never fails: shapes it does not recognise keep their printed
// form as text so the category rule can reject them.
func FromAny(raw any) FieldValue {
	switch typed := raw.(type) {
	case nil:
		return Absent()
	case FieldValue:
		return typed
	case string:
		return Text(typed)
	case float64:
		return Number(typed)
	case float32:
		return Number(float64(typed))
	case int:
		return Number(float64(typed))
	case int32:
		return Number(float64(typed))
	case int64:
		return Number(float64(typed))
	case uint:
		return Number(float64(typed))
	case uint64:
		return Number(float64(typed))
	case FileRef:
		return File(typed)
	case *FileRef:
		if typed == nil {
			return NoFile()
		}
		return File(*typed)
	case map[string]any:
		// decoded JSON file descriptors: {"name": "...", "size": 123}
		name, ok := typed["name"].(string)
		if !ok {
			return Text(fmt.Sprint(typed))
		}
		ref := FileRef{Name: name}
		if size, ok := typed["size"].(float64); ok {
			ref.Size = int64(size)
		}
		return File(ref)
	case time.Time:
		if typed.IsZero() {
			return Absent()
		}
		return Date(typed.Format(time.RFC3339))
	case fmt.Stringer:
		return Text(typed.String())
	default:
		return Text(fmt.Sprint(typed))
	}
}
