// Package openapi derives FieldSchema registries from OpenAPI 3 documents so
// a form can validate against the same contract its backend publishes. The
// request body of one operation is inspected and every required property is
// classified by type, format or an explicit x-formgate-category extension.
package openapi
