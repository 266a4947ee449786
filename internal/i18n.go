package internal

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const (
	// DefaultLocale is the storefront's default display language
	DefaultLocale = "id"

	// FallbackLocale is consulted when a key is missing from the active
	// locale's table
	FallbackLocale = "en"
)

// Translator maps dotted key paths to display strings for the active
// locale, falling back to the default locale, else returning the key.
type Translator struct {
	locale string
	tables map[string]map[string]interface{}
}

// NewTranslator loads the embedded locale tables
func NewTranslator(locale string) (*Translator, error) {
	t := &Translator{
		locale: locale,
		tables: make(map[string]map[string]interface{}),
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale files: %w", err)
	}

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", name, err)
		}

		var table map[string]interface{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", name, err)
		}
		t.tables[name] = table
	}

	if _, ok := t.tables[locale]; !ok {
		t.locale = DefaultLocale
	}
	return t, nil
}

// SetLocale switches the active language. Unknown locales are ignored.
func (t *Translator) SetLocale(locale string) {
	if _, ok := t.tables[locale]; ok {
		t.locale = locale
	}
}

// Locale returns the active language code
func (t *Translator) Locale() string {
	return t.locale
}

// T resolves a dotted key path ("chat.tabs.inbox") against the active
// locale, then the fallback locale, and finally returns the key itself.
func (t *Translator) T(key string) string {
	if value, ok := lookup(t.tables[t.locale], key); ok {
		return value
	}
	if value, ok := lookup(t.tables[FallbackLocale], key); ok {
		return value
	}
	return key
}

func lookup(table map[string]interface{}, key string) (string, bool) {
	if table == nil {
		return "", false
	}

	var current interface{} = table
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}

	if s, ok := current.(string); ok {
		return s, true
	}
	return "", false
}
