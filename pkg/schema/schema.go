package schema

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formgate/pkg/model"
)

// Registry lists the identifiers opted into each validation category. The
// four sets must be disjoint.
type Registry struct {
	Text    []string `json:"text,omitempty" yaml:"text,omitempty" validate:"dive,required"`
	Numeric []string `json:"numeric,omitempty" yaml:"numeric,omitempty" validate:"dive,required"`
	File    []string `json:"file,omitempty" yaml:"file,omitempty" validate:"dive,required"`
	Date    []string `json:"date,omitempty" yaml:"date,omitempty" validate:"dive,required"`
}

func (r Registry) sets() []categorySet {
	return []categorySet{
		{category: model.CategoryText, ids: r.Text},
		{category: model.CategoryNumeric, ids: r.Numeric},
		{category: model.CategoryFile, ids: r.File},
		{category: model.CategoryDate, ids: r.Date},
	}
}

type categorySet struct {
	category model.Category
	ids      []string
}

// FieldSchema is an immutable mapping from field identifier to category. It
// is safe for concurrent use once constructed.
type FieldSchema struct {
	categories map[string]model.Category
}

// New builds a FieldSchema from the registry. Identifiers are trimmed and
// repeated entries within one set are tolerated. An identifier listed under two
// categories yields a *ConflictError naming every offender.
func New(reg Registry) (*FieldSchema, error) {
	categories := make(map[string]model.Category)
	conflicts := make(map[string][]model.Category)

	for _, set := range reg.sets() {
		for _, raw := range set.ids {
			id := strings.TrimSpace(raw)
			if id == "" {
				return nil, ErrBlankIdentifier
			}
			existing, seen := categories[id]
			if !seen {
				categories[id] = set.category
				continue
			}
			if existing == set.category {
				continue
			}
			if len(conflicts[id]) == 0 {
				conflicts[id] = append(conflicts[id], existing)
			}
			conflicts[id] = appendCategory(conflicts[id], set.category)
		}
	}

	if len(conflicts) > 0 {
		return nil, newConflictError(conflicts)
	}
	return &FieldSchema{categories: categories}, nil
}

// MustNew panics if the registry is misconfigured. Useful for init-time wiring.
func MustNew(reg Registry) *FieldSchema {
	fs, err := New(reg)
	if err != nil {
		panic(err)
	}
	return fs
}

// Classify returns the category for id, or CategoryUnclassified when the
// identifier is unknown or the schema is nil.
func (s *FieldSchema) Classify(id string) model.Category {
	if s == nil {
		return model.CategoryUnclassified
	}
	return s.categories[id]
}

// Len reports how many identifiers are registered.
func (s *FieldSchema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.categories)
}

// Identifiers returns every registered identifier in lexical order.
func (s *FieldSchema) Identifiers() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.categories))
	for id := range s.categories {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Registry rebuilds a normalised registry (trimmed, deduplicated, sorted).
func (s *FieldSchema) Registry() Registry {
	var reg Registry
	for _, id := range s.Identifiers() {
		switch s.categories[id] {
		case model.CategoryText:
			reg.Text = append(reg.Text, id)
		case model.CategoryNumeric:
			reg.Numeric = append(reg.Numeric, id)
		case model.CategoryFile:
			reg.File = append(reg.File, id)
		case model.CategoryDate:
			reg.Date = append(reg.Date, id)
		}
	}
	return reg
}

func appendCategory(list []model.Category, category model.Category) []model.Category {
	for _, existing := range list {
		if existing == category {
			return list
		}
	}
	return append(list, category)
}
