package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/validation"
)

var (
	// ErrSubmissionBlocked is returned by Submit when at least one field is
	// invalid. The verdict returned alongside it carries the full error map.
	ErrSubmissionBlocked = errors.New("submission: blocked by invalid fields")
	// ErrNoAction is returned by Submit when the action is nil.
	ErrNoAction = errors.New("submission: action is required")
)

// Action is the host's success path, run only after a passing verdict.
type Action func(ctx context.Context, values map[string]model.FieldValue) error

// Gate runs exhaustive validation at submit time.
type Gate struct {
	engine  *validation.Engine
	logger  zerolog.Logger
	metrics *Metrics
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger attaches a structured logger. The default discards output.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

// WithMetrics records pass and failure counters.
func WithMetrics(metrics *Metrics) Option {
	return func(g *Gate) {
		g.metrics = metrics
	}
}

// NewGate builds a gate over engine.
func NewGate(engine *validation.Engine, options ...Option) *Gate {
	g := &Gate{
		engine: engine,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Engine returns the engine used for field validation.
func (g *Gate) Engine() *validation.Engine {
	return g.engine
}

// ValidateAll validates every identifier present in values, not the whole
// schema. Every identifier is promoted to touched and a failing field never
// stops the rest of the pass.
func (g *Gate) ValidateAll(values map[string]model.FieldValue) model.Verdict {
	verdict := model.Verdict{
		Errors:   make(model.ErrorMap, len(values)),
		Touched:  make(model.TouchedSet, len(values)),
		AllValid: true,
	}

	for id, value := range values {
		fieldErr := g.engine.ValidateField(id, value)
		verdict.Errors[id] = fieldErr
		verdict.Touched.Touch(id)
		if fieldErr != nil {
			verdict.AllValid = false
			g.metrics.recordFieldError(g.engine.Classify(id), fieldErr.Kind)
		}
	}

	g.metrics.recordPass(verdict.AllValid)
	g.logger.Debug().
		Int("fields", len(values)).
		Strs("invalid", verdict.Errors.Invalid()).
		Bool("all_valid", verdict.AllValid).
		Msg("form validation pass")

	return verdict
}

// ValidateAny converts host-native values with model.FromAny before running
// ValidateAll.
func (g *Gate) ValidateAny(values map[string]any) model.Verdict {
	return g.ValidateAll(ConvertValues(values))
}

// Submit runs a full pass and calls action only when every field is valid.
// An invalid pass returns the verdict and ErrSubmissionBlocked; the action's
// own error is wrapped and returned with the passing verdict.
func (g *Gate) Submit(ctx context.Context, values map[string]model.FieldValue, action Action) (model.Verdict, error) {
	if action == nil {
		return model.Verdict{}, ErrNoAction
	}

	verdict := g.ValidateAll(values)
	if !verdict.AllValid {
		invalid := verdict.Errors.Invalid()
		g.logger.Info().Strs("invalid", invalid).Msg("submission blocked")
		return verdict, fmt.Errorf("%w: %d field(s)", ErrSubmissionBlocked, len(invalid))
	}

	if err := ctx.Err(); err != nil {
		return verdict, err
	}
	if err := action(ctx, values); err != nil {
		g.logger.Warn().Err(err).Msg("submission action failed")
		return verdict, fmt.Errorf("submission: action: %w", err)
	}
	return verdict, nil
}

// ConvertValues maps host-native values into FieldValues.
func ConvertValues(values map[string]any) map[string]model.FieldValue {
	out := make(map[string]model.FieldValue, len(values))
	for id, raw := range values {
		out[id] = model.FromAny(raw)
	}
	return out
}
