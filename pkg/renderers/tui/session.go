package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formgate/pkg/formstate"
	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/schema"
	"github.com/goliatone/go-formgate/pkg/submission"
	"github.com/goliatone/go-formgate/pkg/validation"
)

// Field describes one prompt. Only ID is required.
type Field struct {
	ID        string
	Label     string
	Help      string
	Secret    bool
	Multiline bool
}

func (f Field) label() string {
	if f.Label != "" {
		return f.Label
	}
	return f.ID
}

// FieldsFromSchema lists one prompt per registered identifier, in lexical
// order.
func FieldsFromSchema(fs *schema.FieldSchema) []Field {
	ids := fs.Identifiers()
	fields := make([]Field, 0, len(ids))
	for _, id := range ids {
		fields = append(fields, Field{ID: id})
	}
	return fields
}

// Result is the outcome of a completed session.
type Result struct {
	State   formstate.FormState
	Verdict model.Verdict
	Output  []byte
}

// Session collects values for a form in the terminal. Each answer is
// validated immediately and the field is prompted again while it is invalid;
// the final submission pass runs through the gate.
type Session struct {
	gate              *submission.Gate
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	resolveFile       FileResolver
	maxAttempts       int
	confirm           bool
}

// NewSession constructs a session with defaults (survey driver, JSON output).
func NewSession(gate *submission.Gate, options ...Option) (*Session, error) {
	if gate == nil {
		return nil, errors.New("tui: submission gate is required")
	}
	s := &Session{
		gate:         gate,
		outputFormat: OutputFormatJSON,
		resolveFile:  statFile,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver()
	}
	return s, nil
}

// ContentType reports the serialization format used by Run.
func (s *Session) ContentType() string {
	return s.outputFormat.ContentType()
}

// Run prompts fields in order, seeded with prefill, and returns the final
// state, the verdict and the serialized values. A failing verdict is returned
// together with submission.ErrSubmissionBlocked; this happens only when
// prefilled values for fields that were not prompted are invalid.
func (s *Session) Run(ctx context.Context, fields []Field, prefill map[string]model.FieldValue) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	state := formstate.New(prefill)
	for _, field := range fields {
		if strings.TrimSpace(field.ID) == "" {
			continue
		}
		next, err := s.promptField(ctx, field, state)
		if err != nil {
			return Result{State: state}, err
		}
		state = next
	}

	if s.confirm {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Submit?", Default: true})
		if err != nil {
			return Result{State: state}, err
		}
		if !ok {
			return Result{State: state}, ErrDeclined
		}
	}

	state, verdict := state.Submit(s.gate)
	result := Result{State: state, Verdict: verdict}
	if !verdict.AllValid {
		invalid := verdict.Errors.Invalid()
		return result, fmt.Errorf("%w: %s", submission.ErrSubmissionBlocked, strings.Join(invalid, ", "))
	}

	values := Export(state.Values())
	if s.submitTransformer != nil {
		var err error
		values, err = s.submitTransformer(values)
		if err != nil {
			return result, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	out, err := serialize(s.outputFormat, values)
	if err != nil {
		return result, fmt.Errorf("tui: serialize: %w", err)
	}
	result.Output = out
	return result, nil
}

func (s *Session) promptField(ctx context.Context, field Field, state formstate.FormState) (formstate.FormState, error) {
	engine := s.gate.Engine()
	category := engine.Classify(field.ID)
	current, _ := state.Value(field.ID)

	for attempt := 1; ; attempt++ {
		answer, err := s.ask(ctx, field, category, current)
		if err != nil {
			return state, err
		}

		value, err := s.toValue(category, answer)
		if err != nil {
			_ = s.driver.Info(ctx, s.theme.InvalidPrefix+fmt.Sprintf("Invalid %s: %v", field.label(), err))
		} else {
			state = state.Apply(formstate.Change(engine, field.ID, value), formstate.Blur(field.ID))
			presentation := state.Presentation(engine, field.ID)
			if presentation.Indicator != validation.IndicatorInvalid {
				if s.theme.ValidPrefix != "" {
					_ = s.driver.Info(ctx, s.theme.ValidPrefix+field.label())
				}
				return state, nil
			}
			_ = s.driver.Info(ctx, s.theme.InvalidPrefix+fmt.Sprintf("Invalid %s: %s", field.label(), presentation.FeedbackMessage))
			current = value
		}

		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return state, fmt.Errorf("%w: %s", ErrTooManyAttempts, field.ID)
		}
	}
}

func (s *Session) ask(ctx context.Context, field Field, category model.Category, current model.FieldValue) (string, error) {
	cfg := InputConfig{
		Message: field.label(),
		Default: current.String(),
		Help:    promptHelp(field, category),
	}
	switch {
	case field.Secret:
		cfg.Default = ""
		return s.driver.Password(ctx, cfg)
	case field.Multiline && category != model.CategoryNumeric && category != model.CategoryDate:
		return s.driver.TextArea(ctx, TextAreaConfig{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help})
	default:
		return s.driver.Input(ctx, cfg)
	}
}

func (s *Session) toValue(category model.Category, answer string) (model.FieldValue, error) {
	switch category {
	case model.CategoryNumeric:
		return model.NumericText(answer), nil
	case model.CategoryDate:
		return model.Date(answer), nil
	case model.CategoryFile:
		path := strings.TrimSpace(answer)
		if path == "" {
			return model.NoFile(), nil
		}
		ref, err := s.resolveFile(path)
		if err != nil {
			return model.FieldValue{}, err
		}
		return model.File(ref), nil
	default:
		return model.Text(answer), nil
	}
}

func promptHelp(field Field, category model.Category) string {
	if field.Help != "" {
		return field.Help
	}
	switch category {
	case model.CategoryNumeric:
		return "a positive number"
	case model.CategoryDate:
		return "a date such as 2024-01-31"
	case model.CategoryFile:
		return "path to a file"
	default:
		return ""
	}
}
