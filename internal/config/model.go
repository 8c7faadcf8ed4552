package config

import "context"

// Alias is the format-agnostic representation of a single alias
// declaration.
type Alias struct {
	// Name is the alias being declared. It may contain deferred ${...}
	// placeholders, resolved after registration by the resolve pass.
	Name string

	// Target is the name the alias points at.
	Target string

	// SourceFile is the manifest the declaration came from, for
	// diagnostics.
	SourceFile string
}

// Model is the unified representation of all loaded alias manifests.
type Model struct {
	// Aliases holds declarations in file order.
	Aliases []*Alias

	// Variables holds the merged contents of all variables blocks; the
	// placeholder resolve pass reads them.
	Variables map[string]string
}

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given paths (files or directories) and
	// translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
