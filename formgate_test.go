package formgate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	formgate "github.com/goliatone/go-formgate"
	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/schema"
	"github.com/goliatone/go-formgate/pkg/validation"
)

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     int
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, s.err
}

func TestNew_EndToEnd(t *testing.T) {
	form := formgate.MustNew(schema.Registry{
		Text:    []string{"firstName"},
		Numeric: []string{"salary"},
	})

	verdict := form.ValidateAll(map[string]model.FieldValue{
		"firstName": model.Text("John"),
		"salary":    model.NumericText("-5"),
	})
	if verdict.AllValid {
		t.Fatalf("expected invalid verdict")
	}
	if diff := cmp.Diff(map[string]string{"salary": "must be a positive number"}, verdict.Errors.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	p := form.PresentationState("salary", true, form.ValidateField("salary", model.NumericText("1")))
	if p.Indicator != validation.IndicatorValid {
		t.Fatalf("expected valid presentation, got %+v", p)
	}
}

func TestNew_ConflictFails(t *testing.T) {
	_, err := formgate.New(schema.Registry{Text: []string{"a"}, Date: []string{"a"}})
	if !errors.Is(err, schema.ErrCategoryConflict) {
		t.Fatalf("expected ErrCategoryConflict, got %v", err)
	}
}

func TestWithThemeSelector(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				validation.ThemeTokenInvalidFeedback: "text-danger",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{validation.ThemeTokenValidFeedback: "text-success"}},
			},
		},
	}}

	form, err := formgate.New(schema.Registry{Text: []string{"name"}}, formgate.WithThemeSelector(selector, "acme", "dark"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if selector.calls != 1 {
		t.Fatalf("expected one selection, got %d", selector.calls)
	}

	got := form.Engine.Tokens()
	want := validation.DefaultTokens()
	want.ValidFeedback = "text-success"
	want.InvalidFeedback = "text-danger"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}

	selector = &stubThemeSelector{err: errors.New("unknown theme")}
	if _, err := formgate.New(schema.Registry{}, formgate.WithThemeSelector(selector, "nope", "")); err == nil {
		t.Fatalf("expected selection error")
	}
}

func TestNewFromFile_AndOpenAPI(t *testing.T) {
	form, err := formgate.NewFromFile(filepath.Join("pkg", "schema", "testdata", "registry.yaml"))
	if err != nil {
		t.Fatalf("from file: %v", err)
	}
	if got := form.Schema.Classify("resume"); got != model.CategoryFile {
		t.Fatalf("expected resume file, got %s", got)
	}

	data, err := os.ReadFile(filepath.Join("pkg", "openapi", "testdata", "employees.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	form, err = formgate.NewFromOpenAPI(context.Background(), data, "createEmployee")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}
	if got := form.Schema.Classify("startDate"); got != model.CategoryDate {
		t.Fatalf("expected startDate date, got %s", got)
	}
}
