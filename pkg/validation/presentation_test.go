package validation_test

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/validation"
)

func TestPresentationState(t *testing.T) {
	engine := newTestEngine(t)
	fieldErr := &model.FieldError{Field: "salary", Kind: model.ErrorKindTypeMismatch, Message: "must be a positive number"}

	tests := []struct {
		name    string
		touched bool
		err     *model.FieldError
		want    validation.Presentation
	}{
		{
			name: "untouched without error",
			want: validation.Presentation{Field: "salary", Indicator: validation.IndicatorNeutral},
		},
		{
			name: "untouched with error stays neutral",
			err:  fieldErr,
			want: validation.Presentation{Field: "salary", Indicator: validation.IndicatorNeutral},
		},
		{
			name:    "touched valid",
			touched: true,
			want: validation.Presentation{
				Field:          "salary",
				Indicator:      validation.IndicatorValid,
				IndicatorClass: "is-valid",
				FeedbackClass:  "valid",
			},
		},
		{
			name:    "touched invalid",
			touched: true,
			err:     fieldErr,
			want: validation.Presentation{
				Field:           "salary",
				Indicator:       validation.IndicatorInvalid,
				IndicatorClass:  "is-invalid",
				FeedbackClass:   "invalid",
				FeedbackMessage: "must be a positive number",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.PresentationState("salary", tt.touched, tt.err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("presentation mismatch (-want +got):\n%s", diff)
			}
			if again := engine.PresentationState("salary", tt.touched, tt.err); again != got {
				t.Fatalf("presentation is not replayable: %+v vs %+v", got, again)
			}
		})
	}
}

func TestIndicatorString(t *testing.T) {
	got := []string{
		validation.IndicatorNeutral.String(),
		validation.IndicatorValid.String(),
		validation.IndicatorInvalid.String(),
	}
	if diff := cmp.Diff([]string{"neutral", "valid", "invalid"}, got); diff != "" {
		t.Fatalf("indicator names mismatch (-want +got):\n%s", diff)
	}
}

func TestWithTokens_Renamed(t *testing.T) {
	engine := newTestEngine(t, validation.WithTokens(validation.Tokens{
		ValidIndicator:   "ok",
		InvalidIndicator: "ko",
		ValidFeedback:    "text-success",
		InvalidFeedback:  "text-danger",
	}))

	got := engine.PresentationState("firstName", true, &model.FieldError{Message: "required"})
	if got.IndicatorClass != "ko" || got.FeedbackClass != "text-danger" {
		t.Fatalf("renamed tokens not applied: %+v", got)
	}
	neutral := engine.PresentationState("firstName", false, nil)
	if neutral.IndicatorClass != "" || neutral.FeedbackClass != "" {
		t.Fatalf("neutral state must stay class-less: %+v", neutral)
	}
}

func TestNewEngine_RejectsCollapsedTokens(t *testing.T) {
	cases := map[string]validation.Tokens{
		"empty valid":   {ValidIndicator: "", InvalidIndicator: "bad", ValidFeedback: "a", InvalidFeedback: "b"},
		"same feedback": {ValidIndicator: "a", InvalidIndicator: "b", ValidFeedback: "same", InvalidFeedback: "same"},
	}
	for name, tokens := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := validation.NewEngine(nil, validation.WithTokens(tokens))
			if !errors.Is(err, validation.ErrInvalidTokens) {
				t.Fatalf("expected ErrInvalidTokens, got %v", err)
			}
		})
	}
}

func TestTokensFromTheme(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			validation.ThemeTokenValidIndicator:   "acme-ok",
			validation.ThemeTokenInvalidIndicator: "acme-error",
			"brand":                               "#123456",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					validation.ThemeTokenInvalidIndicator: "acme-error-dark",
					validation.ThemeTokenInvalidFeedback:  "acme-feedback-dark",
				},
			},
		},
	}

	got := validation.TokensFromTheme(manifest, "dark")
	want := validation.Tokens{
		ValidIndicator:   "acme-ok",
		InvalidIndicator: "acme-error-dark",
		ValidFeedback:    "valid",
		InvalidFeedback:  "acme-feedback-dark",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("theme tokens mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(validation.DefaultTokens(), validation.TokensFromTheme(nil, "")); diff != "" {
		t.Fatalf("nil manifest should yield defaults (-want +got):\n%s", diff)
	}
}
