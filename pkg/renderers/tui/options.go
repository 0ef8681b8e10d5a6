package tui

import (
	"os"

	"github.com/goliatone/go-formgate/pkg/model"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ContentType reports the MIME type for the format.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Theme captures optional message prefixes applied to feedback lines. A
// non-empty ValidPrefix also prints a line for every accepted field.
type Theme struct {
	ValidPrefix   string
	InvalidPrefix string
}

// SubmitTransformer mutates collected values before serialization.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// FileResolver turns a path typed at a file prompt into a reference. A
// missing file is reported as an error and the field is prompted again.
type FileResolver func(path string) (model.FileRef, error)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

// WithSubmitTransformer allows callers to mutate collected values prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(s *Session) {
		s.submitTransformer = fn
	}
}

// WithTheme applies optional feedback prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithFileResolver overrides how file paths are resolved. The default stats
// the path on the local filesystem.
func WithFileResolver(fn FileResolver) Option {
	return func(s *Session) {
		if fn != nil {
			s.resolveFile = fn
		}
	}
}

// WithMaxAttempts caps re-prompts per field. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithConfirmation asks for a final yes/no before the submission pass.
func WithConfirmation(enabled bool) Option {
	return func(s *Session) {
		s.confirm = enabled
	}
}

func statFile(path string) (model.FileRef, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.FileRef{}, err
	}
	return model.FileRef{Name: info.Name(), Size: info.Size()}, nil
}
