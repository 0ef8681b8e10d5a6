package formstate

import (
	"sort"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/submission"
	"github.com/goliatone/go-formgate/pkg/validation"
)

// FormState is the host-owned snapshot of one form: current values, the error
// map and the touched set. It is a value: every transform returns a new
// FormState and never mutates the receiver, so a state can be shared freely.
type FormState struct {
	values  map[string]model.FieldValue
	errors  model.ErrorMap
	touched model.TouchedSet
}

// New seeds a state with prefilled values. Nothing is validated or touched.
func New(prefill map[string]model.FieldValue) FormState {
	return FormState{
		values:  cloneValues(prefill),
		errors:  make(model.ErrorMap),
		touched: make(model.TouchedSet),
	}
}

// Value returns the stored value for id.
func (s FormState) Value(id string) (model.FieldValue, bool) {
	value, ok := s.values[id]
	return value, ok
}

// Values returns a copy of every stored value.
func (s FormState) Values() map[string]model.FieldValue {
	return cloneValues(s.values)
}

// Errors returns a copy of the error map.
func (s FormState) Errors() model.ErrorMap {
	return s.errors.Clone()
}

// Error returns the current error for id, nil when valid or never validated.
func (s FormState) Error(id string) *model.FieldError {
	return s.errors[id]
}

// Touched returns a copy of the touched set.
func (s FormState) Touched() model.TouchedSet {
	return s.touched.Clone()
}

// IsTouched reports whether the user interacted with id.
func (s FormState) IsTouched(id string) bool {
	return s.touched.Has(id)
}

// Presentation derives the feedback for id from the stored touched flag and
// error.
func (s FormState) Presentation(engine *validation.Engine, id string) validation.Presentation {
	return engine.PresentationState(id, s.IsTouched(id), s.errors[id])
}

// Transform is a pure state update.
type Transform func(FormState) FormState

// Apply runs transforms in order and returns the resulting state.
func (s FormState) Apply(transforms ...Transform) FormState {
	next := s
	for _, transform := range transforms {
		if transform == nil {
			continue
		}
		next = transform(next)
	}
	return next
}

// Change stores value for id and revalidates that field only. The touched set
// is left alone so feedback still waits for Blur or a submission pass.
func Change(engine *validation.Engine, id string, value model.FieldValue) Transform {
	return func(s FormState) FormState {
		next := s.copy()
		next.values[id] = value
		next.errors[id] = engine.ValidateField(id, value)
		return next
	}
}

// Blur marks id as touched.
func Blur(id string) Transform {
	return func(s FormState) FormState {
		next := s.copy()
		next.touched.Touch(id)
		return next
	}
}

// Submitted folds a full-pass verdict into the state: errors for every
// validated field are replaced and every validated field becomes touched.
func Submitted(verdict model.Verdict) Transform {
	return func(s FormState) FormState {
		next := s.copy()
		for id, fieldErr := range verdict.Errors {
			next.errors[id] = fieldErr
		}
		for id := range verdict.Touched {
			next.touched.Touch(id)
		}
		return next
	}
}

// Reset clears errors and touched markers while keeping values.
func Reset() Transform {
	return func(s FormState) FormState {
		return FormState{
			values:  cloneValues(s.values),
			errors:  make(model.ErrorMap),
			touched: make(model.TouchedSet),
		}
	}
}

// Submit runs a full pass over the stored values and returns the next state
// along with the verdict. The host decides what to do with a passing verdict.
func (s FormState) Submit(gate *submission.Gate) (FormState, model.Verdict) {
	verdict := gate.ValidateAll(s.values)
	return s.Apply(Submitted(verdict)), verdict
}

// InvalidFields lists touched fields that currently carry an error, sorted.
func (s FormState) InvalidFields() []string {
	var out []string
	for id, fieldErr := range s.errors {
		if fieldErr != nil && s.touched.Has(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func (s FormState) copy() FormState {
	return FormState{
		values:  cloneValues(s.values),
		errors:  s.errors.Clone(),
		touched: s.touched.Clone(),
	}
}

func cloneValues(src map[string]model.FieldValue) map[string]model.FieldValue {
	out := make(map[string]model.FieldValue, len(src))
	for id, value := range src {
		out[id] = value
	}
	return out
}
