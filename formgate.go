package formgate

import (
	"context"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/openapi"
	"github.com/goliatone/go-formgate/pkg/schema"
	"github.com/goliatone/go-formgate/pkg/submission"
	"github.com/goliatone/go-formgate/pkg/validation"
)

// Form bundles the schema, engine and gate built from one registry.
type Form struct {
	Schema *schema.FieldSchema
	Engine *validation.Engine
	Gate   *submission.Gate
}

type config struct {
	engineOptions []validation.Option
	gateOptions   []submission.Option
	selector      theme.ThemeSelector
	themeName     string
	themeVariant  string
}

// Option configures New and its variants.
type Option func(*config)

// WithEngineOptions forwards options to validation.NewEngine.
func WithEngineOptions(options ...validation.Option) Option {
	return func(c *config) {
		c.engineOptions = append(c.engineOptions, options...)
	}
}

// WithGateOptions forwards options to submission.NewGate.
func WithGateOptions(options ...submission.Option) Option {
	return func(c *config) {
		c.gateOptions = append(c.gateOptions, options...)
	}
}

// WithThemeSelector resolves presentation tokens from a go-theme selection.
// Tokens found in the selected manifest and variant replace the defaults.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(c *config) {
		c.selector = selector
		c.themeName = name
		c.themeVariant = variant
	}
}

// New builds a Form from an in-memory registry.
func New(reg schema.Registry, options ...Option) (*Form, error) {
	fs, err := schema.New(reg)
	if err != nil {
		return nil, err
	}
	return fromSchema(fs, options...)
}

// MustNew is New that panics on error.
func MustNew(reg schema.Registry, options ...Option) *Form {
	form, err := New(reg, options...)
	if err != nil {
		panic(err)
	}
	return form
}

// NewFromFile builds a Form from a YAML or JSON registry file.
func NewFromFile(path string, options ...Option) (*Form, error) {
	fs, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return fromSchema(fs, options...)
}

// NewFromOpenAPI builds a Form from the request body of an OpenAPI operation.
func NewFromOpenAPI(ctx context.Context, document []byte, operationID string, options ...Option) (*Form, error) {
	fs, err := openapi.SchemaFromDocument(ctx, document, operationID)
	if err != nil {
		return nil, err
	}
	return fromSchema(fs, options...)
}

func fromSchema(fs *schema.FieldSchema, options ...Option) (*Form, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engineOptions := cfg.engineOptions
	if cfg.selector != nil {
		tokens, err := selectTokens(cfg.selector, cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, err
		}
		engineOptions = append([]validation.Option{validation.WithTokens(tokens)}, engineOptions...)
	}

	engine, err := validation.NewEngine(fs, engineOptions...)
	if err != nil {
		return nil, err
	}
	return &Form{
		Schema: fs,
		Engine: engine,
		Gate:   submission.NewGate(engine, cfg.gateOptions...),
	}, nil
}

func selectTokens(selector theme.ThemeSelector, name, variant string) (validation.Tokens, error) {
	selection, err := selector.Select(strings.TrimSpace(name), strings.TrimSpace(variant))
	if err != nil {
		return validation.Tokens{}, fmt.Errorf("formgate: select theme %q: %w", name, err)
	}
	if selection == nil {
		return validation.DefaultTokens(), nil
	}
	return validation.TokensFromTheme(selection.Manifest, selection.Variant), nil
}

// ValidateField delegates to the engine.
func (f *Form) ValidateField(id string, value model.FieldValue) *model.FieldError {
	return f.Engine.ValidateField(id, value)
}

// PresentationState delegates to the engine.
func (f *Form) PresentationState(id string, touched bool, err *model.FieldError) validation.Presentation {
	return f.Engine.PresentationState(id, touched, err)
}

// ValidateAll delegates to the gate.
func (f *Form) ValidateAll(values map[string]model.FieldValue) model.Verdict {
	return f.Gate.ValidateAll(values)
}
