package model

import internalmodel "github.com/goliatone/go-formgate/internal/model"

// Category re-exports the internal Category enumeration.
type Category = internalmodel.Category

const (
	CategoryUnclassified = internalmodel.CategoryUnclassified
	CategoryText         = internalmodel.CategoryText
	CategoryNumeric      = internalmodel.CategoryNumeric
	CategoryFile         = internalmodel.CategoryFile
	CategoryDate         = internalmodel.CategoryDate
)

// ValueKind re-exports the FieldValue shape tag.
type ValueKind = internalmodel.ValueKind

const (
	ValueAbsent = internalmodel.ValueAbsent
	ValueText   = internalmodel.ValueText
	ValueNumber = internalmodel.ValueNumber
	ValueFile   = internalmodel.ValueFile
	ValueDate   = internalmodel.ValueDate
)

type ErrorKind = internalmodel.ErrorKind

const (
	ErrorKindRequired     = internalmodel.ErrorKindRequired
	ErrorKindTypeMismatch = internalmodel.ErrorKindTypeMismatch
)

type FieldValue = internalmodel.FieldValue
type FileRef = internalmodel.FileRef
type FieldError = internalmodel.FieldError
type ErrorMap = internalmodel.ErrorMap
type TouchedSet = internalmodel.TouchedSet
type Verdict = internalmodel.Verdict

// Value constructors.
var (
	Absent      = internalmodel.Absent
	Text        = internalmodel.Text
	Number      = internalmodel.Number
	NumericText = internalmodel.NumericText
	File        = internalmodel.File
	NoFile      = internalmodel.NoFile
	Date        = internalmodel.Date
	FromAny     = internalmodel.FromAny
)

// ParseCategory resolves "text", "numeric", "file", "date" or "unclassified".
func ParseCategory(raw string) (Category, error) {
	return internalmodel.ParseCategory(raw)
}
