package formstate

import (
	"strings"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/validation"
)

// SelectionCommitted is the only message a selection dialog emits to its
// owner: the field being filled and the chosen value. The dialog never reaches
// into the owner's state.
type SelectionCommitted struct {
	Field string
	Value model.FieldValue
}

// Commit applies a committed selection atomically: the value is stored, the
// field is revalidated and marked touched in one step. An empty field name is
// ignored.
func Commit(engine *validation.Engine, selection SelectionCommitted) Transform {
	return func(s FormState) FormState {
		id := strings.TrimSpace(selection.Field)
		if id == "" {
			return s
		}
		next := s.copy()
		next.values[id] = selection.Value
		next.errors[id] = engine.ValidateField(id, selection.Value)
		next.touched.Touch(id)
		return next
	}
}

// Dialog holds the pending choice of a selection dialog. Choosing updates the
// dialog only; Save produces the SelectionCommitted message for the owner.
type Dialog struct {
	field   string
	pending model.FieldValue
	chosen  bool
}

// NewDialog opens a dialog for field, seeded with the owner's current value.
func NewDialog(field string, current model.FieldValue) Dialog {
	return Dialog{field: field, pending: current, chosen: !current.IsAbsent()}
}

// Choose returns a dialog with value pending.
func (d Dialog) Choose(value model.FieldValue) Dialog {
	d.pending = value
	d.chosen = true
	return d
}

// Save returns the committed selection, or false when nothing was chosen.
func (d Dialog) Save() (SelectionCommitted, bool) {
	if !d.chosen {
		return SelectionCommitted{}, false
	}
	return SelectionCommitted{Field: d.field, Value: d.pending}, true
}
