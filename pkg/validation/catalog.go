package validation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingMessage is returned by Catalog when a locale has no entry for a
// key.
var ErrMissingMessage = errors.New("validation: message not found")

// Catalog is a static Translator: locale -> key -> message. Locales fall back
// to their base language, so "pt-BR" uses "pt" when it has no entry.
type Catalog map[string]map[string]string

// Translate implements Translator.
func (c Catalog) Translate(locale, key string) (string, error) {
	for _, candidate := range localeChain(locale) {
		if msg := strings.TrimSpace(c[candidate][key]); msg != "" {
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingMessage, locale, key)
}

// ParseCatalog decodes a YAML (or JSON) catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("validation: parse catalog: %w", err)
	}
	return catalog, nil
}

// LoadCatalog reads a catalog file from disk.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("validation: read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}
