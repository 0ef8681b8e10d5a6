package submission_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/schema"
	"github.com/goliatone/go-formgate/pkg/submission"
	"github.com/goliatone/go-formgate/pkg/validation"
)

func newGate(t *testing.T, reg schema.Registry, options ...submission.Option) *submission.Gate {
	t.Helper()
	fs, err := schema.New(reg)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	engine, err := validation.NewEngine(fs)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return submission.NewGate(engine, options...)
}

var employeeRegistry = schema.Registry{
	Text:    []string{"firstName"},
	Numeric: []string{"salary"},
}

func TestValidateAll_InvalidForm(t *testing.T) {
	gate := newGate(t, employeeRegistry)

	verdict := gate.ValidateAll(map[string]model.FieldValue{
		"firstName": model.Text(""),
		"salary":    model.NumericText("-5"),
	})

	if verdict.AllValid {
		t.Fatalf("expected invalid verdict")
	}
	want := model.ErrorMap{
		"firstName": {Field: "firstName", Kind: model.ErrorKindRequired, Message: "required"},
		"salary":    {Field: "salary", Kind: model.ErrorKindTypeMismatch, Message: "must be a positive number"},
	}
	if diff := cmp.Diff(want, verdict.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"firstName", "salary"}, verdict.Touched.Sorted()); diff != "" {
		t.Fatalf("touched mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAll_ValidForm(t *testing.T) {
	gate := newGate(t, employeeRegistry)

	verdict := gate.ValidateAll(map[string]model.FieldValue{
		"firstName": model.Text("John"),
		"salary":    model.NumericText("50000"),
	})

	if !verdict.AllValid {
		t.Fatalf("expected valid verdict, got %+v", verdict.Errors.Messages())
	}
	if diff := cmp.Diff(model.ErrorMap{"firstName": nil, "salary": nil}, verdict.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateAll_DateField(t *testing.T) {
	gate := newGate(t, schema.Registry{Date: []string{"startDate"}})

	bad := gate.ValidateAll(map[string]model.FieldValue{"startDate": model.Date("not-a-date")})
	got := bad.Errors["startDate"]
	if got == nil || got.Kind != model.ErrorKindTypeMismatch || got.Message != "invalid date" {
		t.Fatalf("expected invalid date mismatch, got %+v", got)
	}

	good := gate.ValidateAll(map[string]model.FieldValue{"startDate": model.Date("2024-01-01")})
	if !good.AllValid {
		t.Fatalf("expected valid date, got %+v", good.Errors.Messages())
	}
}

func TestValidateAll_OnlyProvidedFields(t *testing.T) {
	gate := newGate(t, schema.Registry{
		Text: []string{"firstName", "lastName"},
		File: []string{"resume"},
	})

	verdict := gate.ValidateAll(map[string]model.FieldValue{
		"firstName": model.Text("Ada"),
		"extra":     model.Text(""),
	})
	if !verdict.AllValid {
		t.Fatalf("expected valid verdict for provided fields only")
	}
	if _, ok := verdict.Errors["lastName"]; ok {
		t.Fatalf("schema fields missing from values must not be reported")
	}
	if !verdict.Touched.Has("extra") || verdict.Touched.Has("resume") {
		t.Fatalf("unexpected touched set: %v", verdict.Touched.Sorted())
	}
}

func TestValidateAny_MalformedShapesDoNotAbort(t *testing.T) {
	gate := newGate(t, schema.Registry{
		Text:    []string{"firstName"},
		Numeric: []string{"salary"},
		File:    []string{"resume"},
		Date:    []string{"startDate"},
	})

	verdict := gate.ValidateAny(map[string]any{
		"firstName": "Grace",
		"salary":    []int{1, 2},
		"resume":    map[string]any{"name": "cv.pdf", "size": float64(42)},
		"startDate": 12.5,
	})

	want := map[string]string{
		"salary":    "must be a positive number",
		"startDate": "invalid date",
	}
	if diff := cmp.Diff(want, verdict.Errors.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if len(verdict.Errors) != 4 {
		t.Fatalf("expected every field evaluated, got %d entries", len(verdict.Errors))
	}
}

func TestSubmit_BlocksInvalid(t *testing.T) {
	gate := newGate(t, employeeRegistry)
	called := false

	verdict, err := gate.Submit(context.Background(), map[string]model.FieldValue{
		"firstName": model.Text(" "),
		"salary":    model.NumericText("100"),
	}, func(context.Context, map[string]model.FieldValue) error {
		called = true
		return nil
	})

	if !errors.Is(err, submission.ErrSubmissionBlocked) {
		t.Fatalf("expected ErrSubmissionBlocked, got %v", err)
	}
	if called {
		t.Fatalf("action must not run on an invalid verdict")
	}
	if verdict.AllValid || verdict.Errors["firstName"] == nil {
		t.Fatalf("expected populated error map, got %+v", verdict.Errors.Messages())
	}
}

func TestSubmit_RunsActionWhenValid(t *testing.T) {
	gate := newGate(t, employeeRegistry)
	values := map[string]model.FieldValue{
		"firstName": model.Text("John"),
		"salary":    model.Number(50000),
	}

	var received map[string]model.FieldValue
	verdict, err := gate.Submit(context.Background(), values, func(_ context.Context, got map[string]model.FieldValue) error {
		received = got
		return nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !verdict.AllValid || len(received) != 2 {
		t.Fatalf("expected action to receive values, got %v", received)
	}
}

func TestSubmit_ActionAndContextErrors(t *testing.T) {
	gate := newGate(t, employeeRegistry)
	values := map[string]model.FieldValue{"firstName": model.Text("John")}

	boom := errors.New("boom")
	_, err := gate.Submit(context.Background(), values, func(context.Context, map[string]model.FieldValue) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped action error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gate.Submit(ctx, values, func(context.Context, map[string]model.FieldValue) error {
		t.Fatalf("action must not run after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if _, err := gate.Submit(context.Background(), values, nil); !errors.Is(err, submission.ErrNoAction) {
		t.Fatalf("expected ErrNoAction, got %v", err)
	}
}

func TestValidateAll_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	gate := newGate(t, employeeRegistry, submission.WithLogger(logger))

	_, _ = gate.Submit(context.Background(), map[string]model.FieldValue{"firstName": model.Text("")},
		func(context.Context, map[string]model.FieldValue) error { return nil })

	out := logs.String()
	for _, want := range []string{"form validation pass", "submission blocked", `"invalid":["firstName"]`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in logs, got %q", want, out)
		}
	}
}
