package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	registryValidatorOnce sync.Once
	registryValidator     *validator.Validate
)

func structValidator() *validator.Validate {
	registryValidatorOnce.Do(func() {
		registryValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return registryValidator
}

// Load reads a registry document from src and builds a FieldSchema. File
// sources read from disk; fs sources read from fsys, which must be non-nil.
func Load(ctx context.Context, fsys fs.FS, src Source) (*FieldSchema, error) {
	if src == nil {
		return nil, errors.New("schema: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		if fsys == nil {
			return nil, errors.New("schema: fs source requires a filesystem")
		}
		data, err = fs.ReadFile(fsys, src.Location())
	default:
		err = fmt.Errorf("schema: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", src.Location(), err)
	}

	reg, err := Parse(data, src.Location())
	if err != nil {
		return nil, err
	}
	return New(reg)
}

// LoadFile is shorthand for Load with a file source.
func LoadFile(path string) (*FieldSchema, error) {
	return Load(context.Background(), nil, SourceFromFile(path))
}

// LoadFS is shorthand for Load with an fs source.
func LoadFS(fsys fs.FS, name string) (*FieldSchema, error) {
	return Load(context.Background(), fsys, SourceFromFS(name))
}

// Parse decodes a JSON or YAML registry document and checks its entries. The
// source only labels error messages.
func Parse(data []byte, source string) (Registry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Registry{}, fmt.Errorf("schema: file %s is empty", source)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		reg = Registry{}
		if yamlErr := yaml.Unmarshal(data, &reg); yamlErr != nil {
			return Registry{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := structValidator().Struct(reg); err != nil {
		return Registry{}, fmt.Errorf("schema: %s: %w: %v", source, ErrBlankIdentifier, err)
	}
	return reg, nil
}
