package openapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/schema"
)

// CategoryExtension overrides type/format inference for a property.
const CategoryExtension = "x-formgate-category"

var (
	// ErrOperationNotFound is returned when no operation matches the requested
	// identifier.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no request body schema.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
	// ErrEmptyDocument is returned for empty input.
	ErrEmptyDocument = errors.New("openapi: document payload is empty")
)

var mediaTypePreference = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

type options struct {
	externalRefs    bool
	includeOptional bool
}

// Option configures registry extraction.
type Option func(*options)

// WithExternalRefs allows the loader to resolve references to other documents.
func WithExternalRefs(enabled bool) Option {
	return func(o *options) {
		o.externalRefs = enabled
	}
}

// WithOptionalProperties classifies optional properties too. By default only
// required properties are classified and optional ones never error.
func WithOptionalProperties(enabled bool) Option {
	return func(o *options) {
		o.includeOptional = enabled
	}
}

// RegistryFromDocument loads an OpenAPI document and builds a registry from
// the request body of operationID. Operations without an operationId are
// addressed as "<method>:<path>", e.g. "post:/employees".
func RegistryFromDocument(ctx context.Context, data []byte, operationID string, opts ...Option) (schema.Registry, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	doc, err := load(ctx, data, cfg)
	if err != nil {
		return schema.Registry{}, err
	}

	operation, ok := operations(doc)[strings.TrimSpace(operationID)]
	if !ok {
		return schema.Registry{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	body := requestSchema(operation.RequestBody)
	if body == nil {
		return schema.Registry{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	properties, required := flatten(body)
	var reg schema.Registry
	for _, name := range sortedKeys(properties) {
		if _, isRequired := required[name]; !isRequired && !cfg.includeOptional {
			continue
		}
		category, err := classify(properties[name])
		if err != nil {
			return schema.Registry{}, fmt.Errorf("openapi: property %q: %w", name, err)
		}
		switch category {
		case model.CategoryText:
			reg.Text = append(reg.Text, name)
		case model.CategoryNumeric:
			reg.Numeric = append(reg.Numeric, name)
		case model.CategoryFile:
			reg.File = append(reg.File, name)
		case model.CategoryDate:
			reg.Date = append(reg.Date, name)
		}
	}
	return reg, nil
}

// SchemaFromDocument is RegistryFromDocument followed by schema.New.
func SchemaFromDocument(ctx context.Context, data []byte, operationID string, opts ...Option) (*schema.FieldSchema, error) {
	reg, err := RegistryFromDocument(ctx, data, operationID, opts...)
	if err != nil {
		return nil, err
	}
	return schema.New(reg)
}

// LoadFile reads an OpenAPI document from disk and builds a registry for
// operationID.
func LoadFile(ctx context.Context, path, operationID string, opts ...Option) (schema.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Registry{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return RegistryFromDocument(ctx, data, operationID, opts...)
}

// OperationIDs lists the addressable operations of a document, sorted.
func OperationIDs(ctx context.Context, data []byte, opts ...Option) ([]string, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	doc, err := load(ctx, data, cfg)
	if err != nil {
		return nil, err
	}
	return sortedKeys(operations(doc)), nil
}

func load(ctx context.Context, data []byte, cfg options) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

func operations(doc *openapi3.T) map[string]*openapi3.Operation {
	out := make(map[string]*openapi3.Operation)
	if doc == nil || doc.Paths == nil {
		return out
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil {
				continue
			}
			id := operation.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out[id] = operation
		}
	}
	return out
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range mediaTypePreference {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, name := range sortedKeys(content) {
		if mt := content[name]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// flatten merges the properties and required lists of src and its allOf
// members.
func flatten(src *openapi3.Schema) (map[string]*openapi3.Schema, map[string]struct{}) {
	properties := make(map[string]*openapi3.Schema)
	required := make(map[string]struct{})

	var walk func(s *openapi3.Schema, depth int)
	walk = func(s *openapi3.Schema, depth int) {
		if s == nil || depth > 16 {
			return
		}
		for name, ref := range s.Properties {
			if ref != nil && ref.Value != nil {
				properties[name] = ref.Value
			}
		}
		for _, name := range s.Required {
			required[name] = struct{}{}
		}
		for _, member := range s.AllOf {
			if member != nil {
				walk(member.Value, depth+1)
			}
		}
	}
	walk(src, 0)
	return properties, required
}

func classify(property *openapi3.Schema) (model.Category, error) {
	if raw, ok := property.Extensions[CategoryExtension]; ok {
		name, isString := raw.(string)
		if !isString {
			return model.CategoryUnclassified, fmt.Errorf("%s must be a string, got %T", CategoryExtension, raw)
		}
		return model.ParseCategory(name)
	}

	switch strings.ToLower(property.Format) {
	case "binary":
		return model.CategoryFile, nil
	case "date", "date-time":
		return model.CategoryDate, nil
	}

	switch firstSchemaType(property.Type) {
	case "integer", "number":
		return model.CategoryNumeric, nil
	case "string":
		return model.CategoryText, nil
	case "array":
		if property.Items != nil && property.Items.Value != nil && strings.EqualFold(property.Items.Value.Format, "binary") {
			return model.CategoryFile, nil
		}
	}
	return model.CategoryUnclassified, nil
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
