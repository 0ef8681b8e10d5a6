package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/schema"
)

// MustReadFile reads a fixture, failing the test on error.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// LoadRegistry reads a JSON golden registry, returning an error for callers
// managing setup outside of *testing.T.
func LoadRegistry(path string) (schema.Registry, error) {
	if path == "" {
		return schema.Registry{}, errors.New("testsupport: registry path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Registry{}, fmt.Errorf("testsupport: read registry: %w", err)
	}
	var out schema.Registry
	if err := json.Unmarshal(data, &out); err != nil {
		return schema.Registry{}, fmt.Errorf("testsupport: unmarshal registry: %w", err)
	}
	return out, nil
}

// MustLoadRegistry is LoadRegistry for tests.
func MustLoadRegistry(t *testing.T, path string) schema.Registry {
	t.Helper()
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return reg
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is
// set. It returns true when the golden was written.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertRegistryGolden compares got against the registry stored at path,
// refreshing the golden first when UPDATE_GOLDENS is set.
func AssertRegistryGolden(t *testing.T, path string, got schema.Registry) {
	t.Helper()
	if WriteGolden(t, path, got) {
		return
	}
	want := MustLoadRegistry(t, path)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("registry golden mismatch (-want +got):\n%s", diff)
	}
}

// MustSchema builds a FieldSchema, failing the test on error.
func MustSchema(t *testing.T, reg schema.Registry) *schema.FieldSchema {
	t.Helper()
	fs, err := schema.New(reg)
	if err != nil {
		t.Fatalf("new schema: %v", err)
	}
	return fs
}

// ValuesFromJSON decodes a JSON object of host values into FieldValues.
func ValuesFromJSON(t *testing.T, raw string) map[string]model.FieldValue {
	t.Helper()
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("decode values: %v", err)
	}
	out := make(map[string]model.FieldValue, len(decoded))
	for id, value := range decoded {
		out[id] = model.FromAny(value)
	}
	return out
}
