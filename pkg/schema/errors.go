package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formgate/pkg/model"
)

var (
	// ErrCategoryConflict signals an identifier registered under more than one
	// category. It indicates a programming error in the calling form.
	ErrCategoryConflict = errors.New("schema: identifier registered under multiple categories")
	// ErrBlankIdentifier is returned when a registry entry is empty after
	// trimming.
	ErrBlankIdentifier = errors.New("schema: blank field identifier")
)

// Conflict describes one identifier claimed by several categories.
type Conflict struct {
	Identifier string
	Categories []model.Category
}

// ConflictError lists every conflicting identifier found while building a
// FieldSchema, sorted by identifier.
type ConflictError struct {
	Conflicts []Conflict
}

func newConflictError(raw map[string][]model.Category) *ConflictError {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := &ConflictError{Conflicts: make([]Conflict, 0, len(ids))}
	for _, id := range ids {
		out.Conflicts = append(out.Conflicts, Conflict{Identifier: id, Categories: raw[id]})
	}
	return out
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, conflict := range e.Conflicts {
		names := make([]string, 0, len(conflict.Categories))
		for _, category := range conflict.Categories {
			names = append(names, category.String())
		}
		parts = append(parts, fmt.Sprintf("%q (%s)", conflict.Identifier, strings.Join(names, ", ")))
	}
	return ErrCategoryConflict.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrCategoryConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrCategoryConflict
}
