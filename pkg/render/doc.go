// Package render adapts validation results for HTML hosts: sanitized
// feedback markup, error payloads keyed by field, and mapping of server error
// paths back onto field identifiers.
package render
