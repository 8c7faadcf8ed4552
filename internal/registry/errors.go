package registry

import "fmt"

// EmptyNameError reports a blank name or alias argument, rejected before
// any graph access.
type EmptyNameError struct {
	// Field names the offending argument.
	Field string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("registry: %s must not be empty", e.Field)
}

// CircularAliasError reports a registration or resolve step that would
// close a loop through the alias graph. The offending step leaves the
// registry unchanged.
type CircularAliasError struct {
	Name  string
	Alias string
}

func (e *CircularAliasError) Error() string {
	return fmt.Sprintf("registry: cannot register alias %q for name %q: %q is already a direct or indirect alias of %q",
		e.Alias, e.Name, e.Name, e.Alias)
}

// AliasConflictError reports an alias already bound to a different name,
// either at registration time with overriding disabled or when a bulk
// resolve would bind one alias to two distinct targets.
type AliasConflictError struct {
	Alias     string
	Existing  string
	Requested string
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("registry: cannot bind alias %q to name %q: it is already registered for name %q",
		e.Alias, e.Requested, e.Existing)
}

// UnknownAliasError reports removal of a name that has no alias entry.
type UnknownAliasError struct {
	Alias string
}

func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("registry: no alias %q registered", e.Alias)
}
