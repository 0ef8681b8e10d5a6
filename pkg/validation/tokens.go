package validation

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token keys read by TokensFromTheme.
const (
	ThemeTokenValidIndicator   = "validation.indicator.valid"
	ThemeTokenInvalidIndicator = "validation.indicator.invalid"
	ThemeTokenValidFeedback    = "validation.feedback.valid"
	ThemeTokenInvalidFeedback  = "validation.feedback.invalid"
)

// ErrInvalidTokens is returned when a token set would collapse the
// neutral/valid/invalid states.
var ErrInvalidTokens = errors.New("validation: invalid presentation tokens")

// Tokens are the class names handed to rendering code. The neutral state
// always maps to the empty string; the valid and invalid states must map to
// distinct, non-empty names.
type Tokens struct {
	ValidIndicator   string `json:"validIndicator" yaml:"validIndicator"`
	InvalidIndicator string `json:"invalidIndicator" yaml:"invalidIndicator"`
	ValidFeedback    string `json:"validFeedback" yaml:"validFeedback"`
	InvalidFeedback  string `json:"invalidFeedback" yaml:"invalidFeedback"`
}

// DefaultTokens returns the stock class names.
func DefaultTokens() Tokens {
	return Tokens{
		ValidIndicator:   "is-valid",
		InvalidIndicator: "is-invalid",
		ValidFeedback:    "valid",
		InvalidFeedback:  "invalid",
	}
}

// Validate checks that renamed tokens still describe three states.
func (t Tokens) Validate() error {
	pairs := []struct {
		name           string
		valid, invalid string
	}{
		{name: "indicator", valid: t.ValidIndicator, invalid: t.InvalidIndicator},
		{name: "feedback", valid: t.ValidFeedback, invalid: t.InvalidFeedback},
	}
	for _, pair := range pairs {
		valid := strings.TrimSpace(pair.valid)
		invalid := strings.TrimSpace(pair.invalid)
		if valid == "" || invalid == "" {
			return fmt.Errorf("%w: %s classes must not be empty", ErrInvalidTokens, pair.name)
		}
		if valid == invalid {
			return fmt.Errorf("%w: %s classes must differ (%q)", ErrInvalidTokens, pair.name, valid)
		}
	}
	return nil
}

// TokensFromTheme reads class names from a go-theme manifest. Variant tokens
// override manifest tokens; keys absent from both keep their defaults.
func TokensFromTheme(manifest *theme.Manifest, variant string) Tokens {
	tokens := DefaultTokens()
	if manifest == nil {
		return tokens
	}

	merged := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		merged[key] = value
	}
	if v, ok := manifest.Variants[strings.TrimSpace(variant)]; ok {
		for key, value := range v.Tokens {
			merged[key] = value
		}
	}

	assign := func(key string, dst *string) {
		if value := strings.TrimSpace(merged[key]); value != "" {
			*dst = value
		}
	}
	assign(ThemeTokenValidIndicator, &tokens.ValidIndicator)
	assign(ThemeTokenInvalidIndicator, &tokens.InvalidIndicator)
	assign(ThemeTokenValidFeedback, &tokens.ValidFeedback)
	assign(ThemeTokenInvalidFeedback, &tokens.InvalidFeedback)
	return tokens
}
