package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/schema"
)

// DefaultDateLayouts are the layouts tried, in order, for date fields.
var DefaultDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
}

// Classifier resolves a field identifier to its category. *schema.FieldSchema
// satisfies it.
type Classifier interface {
	Classify(id string) model.Category
}

// Engine applies the category rule for a field and derives presentation state.
// It holds no per-form state and is safe for concurrent use.
type Engine struct {
	schema      Classifier
	messages    Messages
	translator  Translator
	locale      string
	onMissing   MissingTranslationHandler
	tokens      Tokens
	dateLayouts []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithMessages overrides the literal error messages. Empty entries keep their
// defaults.
func WithMessages(messages Messages) Option {
	return func(e *Engine) {
		e.messages = messages.withDefaults()
	}
}

// WithTranslator localizes messages for locale. Keys that fail to translate
// fall back to the configured Messages.
func WithTranslator(t Translator, locale string) Option {
	return func(e *Engine) {
		e.translator = t
		e.locale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslationHandler customises the fallback used when a key cannot
// be translated.
func WithMissingTranslationHandler(fn MissingTranslationHandler) Option {
	return func(e *Engine) {
		e.onMissing = fn
	}
}

// WithTokens renames the presentation classes. NewEngine rejects token sets
// that fail Tokens.Validate.
func WithTokens(tokens Tokens) Option {
	return func(e *Engine) {
		e.tokens = tokens
	}
}

// WithDateLayouts replaces the accepted date layouts.
func WithDateLayouts(layouts ...string) Option {
	return func(e *Engine) {
		var clean []string
		for _, layout := range layouts {
			if strings.TrimSpace(layout) != "" {
				clean = append(clean, layout)
			}
		}
		if len(clean) > 0 {
			e.dateLayouts = clean
		}
	}
}

// NewEngine constructs an engine over fs. A nil schema classifies every field
// as Unclassified.
func NewEngine(fs *schema.FieldSchema, options ...Option) (*Engine, error) {
	e := &Engine{
		schema:      fs,
		messages:    DefaultMessages(),
		tokens:      DefaultTokens(),
		dateLayouts: append([]string(nil), DefaultDateLayouts...),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if err := e.tokens.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// MustNewEngine panics if NewEngine fails.
func MustNewEngine(fs *schema.FieldSchema, options ...Option) *Engine {
	e, err := NewEngine(fs, options...)
	if err != nil {
		panic(err)
	}
	return e
}

// Classify exposes the schema lookup used by ValidateField.
func (e *Engine) Classify(id string) model.Category {
	if e == nil || e.schema == nil {
		return model.CategoryUnclassified
	}
	return e.schema.Classify(id)
}

// Tokens returns the presentation classes in use.
func (e *Engine) Tokens() Tokens {
	return e.tokens
}

// ValidateField applies the rule of id's category to value. It returns nil when
// the value is acceptable. Malformed values produce a FieldError, never a
// panic.
func (e *Engine) ValidateField(id string, value model.FieldValue) *model.FieldError {
	switch e.Classify(id) {
	case model.CategoryText:
		return e.validateText(id, value)
	case model.CategoryNumeric:
		return e.validateNumeric(id, value)
	case model.CategoryFile:
		return e.validateFile(id, value)
	case model.CategoryDate:
		return e.validateDate(id, value)
	default:
		return nil
	}
}

func (e *Engine) validateText(id string, value model.FieldValue) *model.FieldError {
	if strings.TrimSpace(value.String()) == "" {
		return e.required(id)
	}
	return nil
}

func (e *Engine) validateNumeric(id string, value model.FieldValue) *model.FieldError {
	switch value.Kind() {
	case model.ValueAbsent:
		return e.required(id)
	case model.ValueFile:
		return e.mismatch(id, KeyPositiveNumber)
	}

	number, ok := value.Float()
	if !ok {
		raw := strings.TrimSpace(value.String())
		if raw == "" {
			return e.required(id)
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return e.mismatch(id, KeyPositiveNumber)
		}
		number = parsed
	}

	if math.IsNaN(number) || math.IsInf(number, 0) || number <= 0 {
		return e.mismatch(id, KeyPositiveNumber)
	}
	return nil
}

func (e *Engine) validateFile(id string, value model.FieldValue) *model.FieldError {
	if ref, ok := value.FileRef(); ok && ref.Present() {
		return nil
	}
	return e.required(id)
}

func (e *Engine) validateDate(id string, value model.FieldValue) *model.FieldError {
	switch value.Kind() {
	case model.ValueAbsent:
		return e.required(id)
	case model.ValueNumber, model.ValueFile:
		if strings.TrimSpace(value.String()) == "" {
			return e.required(id)
		}
		return e.mismatch(id, KeyInvalidDate)
	}

	raw := strings.TrimSpace(value.String())
	if raw == "" {
		return e.required(id)
	}
	if _, err := e.parseDate(raw); err != nil {
		return e.mismatch(id, KeyInvalidDate)
	}
	return nil
}

func (e *Engine) parseDate(raw string) (time.Time, error) {
	for _, layout := range e.dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("validation: %q matches no date layout", raw)
}

func (e *Engine) required(id string) *model.FieldError {
	return &model.FieldError{
		Field:   id,
		Kind:    model.ErrorKindRequired,
		Message: e.message(KeyRequired),
	}
}

func (e *Engine) mismatch(id, key string) *model.FieldError {
	return &model.FieldError{
		Field:   id,
		Kind:    model.ErrorKindTypeMismatch,
		Message: e.message(key),
	}
}
