package validation

import "github.com/goliatone/go-formgate/pkg/model"

// Indicator is the three-state visual marker of a field.
type Indicator uint8

const (
	IndicatorNeutral Indicator = iota
	IndicatorValid
	IndicatorInvalid
)

func (i Indicator) String() string {
	switch i {
	case IndicatorValid:
		return "valid"
	case IndicatorInvalid:
		return "invalid"
	default:
		return "neutral"
	}
}

// Presentation is the derived feedback for one field. Class names come from
// the engine's Tokens; the neutral state always has empty classes and message.
type Presentation struct {
	Field           string    `json:"field"`
	Indicator       Indicator `json:"indicator"`
	IndicatorClass  string    `json:"indicatorClass,omitempty"`
	FeedbackClass   string    `json:"feedbackClass,omitempty"`
	FeedbackMessage string    `json:"feedbackMessage,omitempty"`
}

// PresentationState derives feedback from (touched, err). Untouched fields
// stay neutral whatever their error so feedback never flashes before the
// first interaction. It is a pure function of its inputs.
func (e *Engine) PresentationState(id string, touched bool, err *model.FieldError) Presentation {
	tokens := DefaultTokens()
	if e != nil {
		tokens = e.tokens
	}

	switch {
	case !touched:
		return Presentation{Field: id, Indicator: IndicatorNeutral}
	case err == nil:
		return Presentation{
			Field:          id,
			Indicator:      IndicatorValid,
			IndicatorClass: tokens.ValidIndicator,
			FeedbackClass:  tokens.ValidFeedback,
		}
	default:
		return Presentation{
			Field:           id,
			Indicator:       IndicatorInvalid,
			IndicatorClass:  tokens.InvalidIndicator,
			FeedbackClass:   tokens.InvalidFeedback,
			FeedbackMessage: err.Message,
		}
	}
}
