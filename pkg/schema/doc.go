// Package schema classifies field identifiers into validation categories.
//
// A FieldSchema is built once from four disjoint identifier sets (text,
// numeric, file, date) and is read-only afterwards, so one schema can be shared
// by every form session without locking. Identifiers outside all four sets are
// Unclassified and never fail validation. Registering the same identifier
// under two categories is a configuration error reported by New.
//
// Registries can be declared in code or loaded from JSON/YAML documents:
//
//	text: [firstName, lastName]
//	numeric: [salary]
//	file: [resume]
//	date: [startDate]
package schema
