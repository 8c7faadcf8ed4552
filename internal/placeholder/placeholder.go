// Package placeholder expands ${name} references in strings against a set
// of named values. It produces the resolver handed to the registry's bulk
// resolve pass, so manifests can defer parts of a name (via the HCL $${...}
// escape) until variables and environment are known.
package placeholder

import (
	"fmt"
	"os"
	"strings"
)

const (
	prefix     = "${"
	suffix     = "}"
	defaultSep = ":"

	// maxDepth bounds nested expansion, so a self-referential value fails
	// instead of recursing forever.
	maxDepth = 16
)

// Source supplies values for placeholder names. Returning false means the
// name has no value.
type Source func(name string) (string, bool)

// Map adapts a plain map into a Source.
func Map(values map[string]string) Source {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

// Env sources values from process environment variables.
func Env() Source {
	return os.LookupEnv
}

// Chain tries each source in turn and returns the first hit.
func Chain(sources ...Source) Source {
	return func(name string) (string, bool) {
		for _, src := range sources {
			if v, ok := src(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// UnresolvedError reports a placeholder with no value and no default.
type UnresolvedError struct {
	Name string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("placeholder: no value for %q", e.Name)
}

// Expand replaces every ${name} and ${name:default} in s with the value
// supplied by src. Placeholder names and values may themselves contain
// placeholders; expansion is bounded to maxDepth nested levels.
func Expand(s string, src Source) (string, error) {
	return expand(s, src, 0)
}

// ForRegistry adapts src into a name resolver for the registry's resolve
// pass: placeholders in each name are expanded, and a name that cannot be
// fully expanded is reported absent, dropping the entries it belongs to.
func ForRegistry(src Source) func(name string) (string, bool) {
	return func(name string) (string, bool) {
		resolved, err := Expand(name, src)
		if err != nil {
			return "", false
		}
		return resolved, true
	}
}

func expand(s string, src Source, depth int) (string, error) {
	if depth > maxDepth {
		return "", fmt.Errorf("placeholder: expansion of %q exceeds %d nested levels", s, maxDepth)
	}

	var b strings.Builder
	rest := s
	for {
		start := strings.Index(rest, prefix)
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])

		end := findClose(rest, start)
		if end < 0 {
			return "", fmt.Errorf("placeholder: unclosed placeholder in %q", s)
		}
		key := rest[start+len(prefix) : end]
		rest = rest[end+len(suffix):]

		// The key itself may contain placeholders, e.g. ${svc-${region}}.
		key, err := expand(key, src, depth+1)
		if err != nil {
			return "", err
		}

		name, fallback, hasFallback := strings.Cut(key, defaultSep)
		value, ok := src(name)
		if !ok {
			if !hasFallback {
				return "", &UnresolvedError{Name: name}
			}
			value = fallback
		}

		value, err = expand(value, src, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
	}
}

// findClose returns the index of the brace closing the placeholder opening
// at start, accounting for nested ${...} sequences.
func findClose(s string, start int) int {
	level := 0
	for i := start + len(prefix); i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], prefix):
			level++
			i++ // skip the '{'
		case s[i] == '}':
			if level == 0 {
				return i
			}
			level--
		}
	}
	return -1
}
