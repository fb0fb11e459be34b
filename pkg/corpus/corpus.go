package corpus

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Default is the theme every lookup falls back to.
const Default = "lorem"

var (
	mu     sync.RWMutex
	custom = make(map[string][]string)
)

// Words returns the word list for the given theme. Lookup is
// case-insensitive; an unknown or empty theme resolves to the default
// corpus. The returned slice is shared and must not be mutated.
func Words(theme string) []string {
	key := normalize(theme)
	if words, ok := builtin[key]; ok {
		return words
	}
	mu.RLock()
	defer mu.RUnlock()
	if words, ok := custom[key]; ok {
		return words
	}
	return builtin[Default]
}

// IsDefault reports whether theme resolves to the default lorem corpus
// by name. Custom and built-in alternates never count as default, even
// though unknown names fall back to the default word list.
func IsDefault(theme string) bool {
	key := normalize(theme)
	return key == "" || key == Default
}

// Themes returns the sorted names of all known themes, built-in and custom.
func Themes() []string {
	mu.RLock()
	names := make([]string, 0, len(builtin)+len(custom))
	for name := range builtin {
		names = append(names, name)
	}
	for name := range custom {
		names = append(names, name)
	}
	mu.RUnlock()
	sort.Strings(names)
	return names
}

// Register installs a custom theme under the given name, replacing any
// previously registered custom theme with the same name. Built-in themes
// cannot be overridden. Words are lowercased; empty entries are dropped.
func Register(name string, words []string) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("%w: empty theme name", ErrInvalidCorpus)
	}
	if _, ok := builtin[key]; ok {
		return fmt.Errorf("%w: %q", ErrReservedTheme, key)
	}

	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			cleaned = append(cleaned, w)
		}
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyCorpus, key)
	}

	mu.Lock()
	custom[key] = cleaned
	mu.Unlock()
	return nil
}

// Unregister removes a previously registered custom theme. Removing a
// built-in or unknown theme is a no-op.
func Unregister(name string) {
	mu.Lock()
	delete(custom, normalize(name))
	mu.Unlock()
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
