// Package validation applies per-category rules to field values and derives
// the presentation tokens a renderer needs.
//
// The Engine resolves a field's category through a schema.FieldSchema and
// applies exactly one rule:
//
//   - text: required unless the trimmed value is non-empty
//   - numeric: required when blank, otherwise a positive, finite number
//   - file: required unless a file reference is present
//   - date: required when blank, otherwise parseable with one of the layouts
//   - unclassified: always accepted
//
// Results are data (*model.FieldError), never panics. PresentationState turns
// a (touched, error) pair into a neutral, valid or invalid Presentation whose
// class names can be renamed with Tokens or read from a go-theme manifest.
// Messages can be overridden statically or resolved through a Translator.
package validation
