package validation

import (
	"errors"
	"strings"
)

// Translation keys looked up when a Translator is configured.
const (
	KeyRequired       = "validation.required"
	KeyPositiveNumber = "validation.positive_number"
	KeyInvalidDate    = "validation.invalid_date"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// translator is configured.
var ErrMissingTranslator = errors.New("validation: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string) (string, error)

// Translate calls the underlying function.
func (fn TranslatorFunc) Translate(locale, key string) (string, error) {
	return fn(locale, key)
}

// MissingTranslationHandler decides the message used when translation fails.
// The fallback is the configured Messages entry.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Messages holds the literal error texts. Empty entries fall back to the
// defaults.
type Messages struct {
	Required       string `json:"required,omitempty" yaml:"required,omitempty"`
	PositiveNumber string `json:"positiveNumber,omitempty" yaml:"positiveNumber,omitempty"`
	InvalidDate    string `json:"invalidDate,omitempty" yaml:"invalidDate,omitempty"`
}

// DefaultMessages returns the built-in English messages.
func DefaultMessages() Messages {
	return Messages{
		Required:       "required",
		PositiveNumber: "must be a positive number",
		InvalidDate:    "invalid date",
	}
}

func (m Messages) withDefaults() Messages {
	defaults := DefaultMessages()
	if strings.TrimSpace(m.Required) == "" {
		m.Required = defaults.Required
	}
	if strings.TrimSpace(m.PositiveNumber) == "" {
		m.PositiveNumber = defaults.PositiveNumber
	}
	if strings.TrimSpace(m.InvalidDate) == "" {
		m.InvalidDate = defaults.InvalidDate
	}
	return m
}

func (m Messages) forKey(key string) string {
	switch key {
	case KeyPositiveNumber:
		return m.PositiveNumber
	case KeyInvalidDate:
		return m.InvalidDate
	default:
		return m.Required
	}
}

// message resolves key through the translator, falling back to the static
// message. Resolution happens per call so a translator can change its catalog
// without rebuilding the engine.
func (e *Engine) message(key string) string {
	fallback := e.messages.forKey(key)
	if e.translator == nil {
		if e.onMissing != nil {
			return e.onMissing(e.locale, key, fallback, ErrMissingTranslator)
		}
		return fallback
	}

	result, err := e.translator.Translate(e.locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if e.onMissing != nil {
		return e.onMissing(e.locale, key, fallback, err)
	}
	return fallback
}
