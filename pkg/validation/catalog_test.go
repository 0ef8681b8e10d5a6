package validation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/schema"
	"github.com/goliatone/go-formgate/pkg/validation"
)

const catalogYAML = `
es:
  validation.required: obligatorio
  validation.positive_number: debe ser un número positivo
es-MX:
  validation.required: requerido
`

func TestCatalog(t *testing.T) {
	catalog, err := validation.ParseCatalog([]byte(catalogYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tests := []struct {
		locale, key, want string
	}{
		{"es", validation.KeyRequired, "obligatorio"},
		{"es-MX", validation.KeyRequired, "requerido"},
		{"es-MX", validation.KeyPositiveNumber, "debe ser un número positivo"},
	}
	for _, tt := range tests {
		got, err := catalog.Translate(tt.locale, tt.key)
		if err != nil || got != tt.want {
			t.Fatalf("%s/%s: want %q got %q (%v)", tt.locale, tt.key, tt.want, got, err)
		}
	}
	if _, err := catalog.Translate("fr", validation.KeyRequired); !errors.Is(err, validation.ErrMissingMessage) {
		t.Fatalf("expected ErrMissingMessage, got %v", err)
	}
	if _, err := validation.ParseCatalog([]byte("- not a map")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestCatalog_AsEngineTranslator(t *testing.T) {
	catalog, err := validation.ParseCatalog([]byte(catalogYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	engine := validation.MustNewEngine(
		schema.MustNew(schema.Registry{Text: []string{"name"}, Date: []string{"start"}}),
		validation.WithTranslator(catalog, "es-MX"),
	)

	if got := engine.ValidateField("name", model.Text("")); got == nil || got.Message != "requerido" {
		t.Fatalf("expected translated message, got %+v", got)
	}
	if got := engine.ValidateField("start", model.Date("x")); got == nil || got.Message != "invalid date" {
		t.Fatalf("expected fallback message, got %+v", got)
	}
}
