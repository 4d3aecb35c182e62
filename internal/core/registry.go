package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry   = make(map[string]LanguageDefinition)
	registryMu sync.RWMutex
)

// Register adds a language definition to the registry.
// Panics if a language with the same code is already registered or if
// the definition is missing its caption template.
func Register(def LanguageDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	code := strings.ToLower(def.Code)
	if code == "" {
		panic("language definition has no code")
	}
	if def.Caption == nil {
		panic(fmt.Sprintf("language %s has no caption template", code))
	}
	if _, exists := registry[code]; exists {
		panic(fmt.Sprintf("language already registered: %s", code))
	}

	def.Code = code
	registry[code] = def
}

// Get returns a language definition by code (case-insensitive).
// Returns false if not found.
func Get(code string) (LanguageDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[strings.ToLower(strings.TrimSpace(code))]
	return def, ok
}

// All returns all registered language definitions sorted by code.
func All() []LanguageDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]LanguageDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})

	return result
}

// Codes returns all registered language codes sorted alphabetically.
func Codes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}

	sort.Strings(codes)
	return codes
}

// LanguageCount returns the number of registered languages.
func LanguageCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered languages.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]LanguageDefinition)
}
