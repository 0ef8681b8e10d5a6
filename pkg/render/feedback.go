package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formgate/pkg/validation"
)

var (
	feedbackPolicyOnce sync.Once
	feedbackPolicy     *bluemonday.Policy
)

// FeedbackMarkup is what an HTML host needs to render one field's feedback.
type FeedbackMarkup struct {
	Field          string `json:"field"`
	State          string `json:"state"`
	IndicatorClass string `json:"indicatorClass,omitempty"`
	Class          string `json:"class,omitempty"`
	Message        string `json:"message,omitempty"`
}

// Feedback converts a presentation into markup-ready values. Message has all
// tags stripped and entities escaped, so it can be inserted as HTML.
func Feedback(p validation.Presentation) FeedbackMarkup {
	return FeedbackMarkup{
		Field:          p.Field,
		State:          p.Indicator.String(),
		IndicatorClass: p.IndicatorClass,
		Class:          p.FeedbackClass,
		Message:        sanitizeMessage(p.FeedbackMessage),
	}
}

func sanitizeMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(feedbackSanitizer().Sanitize(trimmed))
}

func feedbackSanitizer() *bluemonday.Policy {
	feedbackPolicyOnce.Do(func() {
		feedbackPolicy = bluemonday.StrictPolicy()
	})
	return feedbackPolicy
}
