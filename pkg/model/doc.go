// Package model defines the values that flow between the field schema, the
// validation engine and the submission gate. Core types live in
// internal/model and are re-exported here. A FieldValue is a tagged union
// (text, number, file reference, date or absent); its runtime shape never
// selects a validation rule, the schema category does. Validation failures are
// data: a nil *FieldError is a valid field, and an ErrorMap holds one entry per
// field that was asked about. Verdicts carry the touched set produced by a
// full submission pass so hosts can show feedback for every field at once.
package model
