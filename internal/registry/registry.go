package registry

import (
	"log/slog"
	"strings"
	"sync"
)

// Registry maps alias names to the names they stand for. All methods are
// safe for concurrent use.
type Registry struct {
	// mu serializes mutations and closure traversals over the alias graph.
	mu sync.Mutex

	// entries is the authoritative alias -> target map, guarded by mu.
	entries map[string]string

	// order lists live aliases in registration order, so closure queries
	// stay deterministic for a given registration history.
	order []string

	// lookup mirrors entries for lock-free point reads (IsAlias,
	// CanonicalName). A read may trail a concurrent mutation by an instant.
	lookup sync.Map

	allowOverride bool
	sink          EventSink
	logger        *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithOverride controls whether re-registering an existing alias to a new
// target is permitted. Overriding is allowed by default; when disabled, a
// conflicting registration fails with *AliasConflictError.
func WithOverride(allow bool) Option {
	return func(r *Registry) { r.allowOverride = allow }
}

// WithEventSink installs a diagnostic sink invoked on overrides and
// conflicts. The default sink logs events at debug level.
func WithEventSink(sink EventSink) Option {
	return func(r *Registry) { r.sink = sink }
}

// WithLogger sets the logger used for registration diagnostics and the
// default event sink.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries:       make(map[string]string),
		allowOverride: true,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.sink == nil {
		r.sink = r.logSink
	}
	return r
}

// RegisterAlias records alias as an alternate name for name. Registering an
// alias equal to its own target removes any existing entry for that alias.
// Re-registering an identical pair is a no-op.
func (r *Registry) RegisterAlias(name, alias string) error {
	if err := checkName("name", name); err != nil {
		return err
	}
	if err := checkName("alias", alias); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if alias == name {
		if _, ok := r.entries[alias]; ok {
			r.deleteLocked(alias)
			r.logger.Debug("Alias dropped: it points to its own name.", "alias", alias)
		}
		return nil
	}

	if existing, ok := r.entries[alias]; ok {
		if existing == name {
			return nil
		}
		if !r.allowOverride {
			r.emit(Event{Kind: EventConflict, Alias: alias, Target: name, Previous: existing})
			return &AliasConflictError{Alias: alias, Existing: existing, Requested: name}
		}
		r.emit(Event{Kind: EventOverride, Alias: alias, Target: name, Previous: existing})
	}

	if r.hasAliasLocked(alias, name) {
		return &CircularAliasError{Name: name, Alias: alias}
	}

	r.setLocked(alias, name)
	r.logger.Debug("Alias registered.", "alias", alias, "name", name)
	return nil
}

// RemoveAlias deletes the entry for alias. Removing a name that is not a
// registered alias fails with *UnknownAliasError.
func (r *Registry) RemoveAlias(alias string) error {
	if err := checkName("alias", alias); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[alias]; !ok {
		return &UnknownAliasError{Alias: alias}
	}
	r.deleteLocked(alias)
	return nil
}

// IsAlias reports whether name currently has a direct alias entry. It reads
// the lock-free mirror and does not block on concurrent mutations.
func (r *Registry) IsAlias(name string) bool {
	_, ok := r.lookup.Load(name)
	return ok
}

// Entry is a single alias -> target edge in a snapshot.
type Entry struct {
	Alias  string
	Target string
}

// Entries returns a snapshot of all live entries in registration order.
// Intended for diagnostics and reporting; order is unspecified only in so
// far as overrides keep the alias's original position.
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, 0, len(r.order))
	for _, alias := range r.order {
		out = append(out, Entry{Alias: alias, Target: r.entries[alias]})
	}
	return out
}

// Count returns the number of registered alias entries.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// setLocked stores alias -> name in both the authoritative map and the
// lock-free mirror. Callers must hold mu.
func (r *Registry) setLocked(alias, name string) {
	if _, ok := r.entries[alias]; !ok {
		r.order = append(r.order, alias)
	}
	r.entries[alias] = name
	r.lookup.Store(alias, name)
}

// deleteLocked removes alias from both structures. Callers must hold mu.
func (r *Registry) deleteLocked(alias string) {
	delete(r.entries, alias)
	r.lookup.Delete(alias)
	for i, a := range r.order {
		if a == alias {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func checkName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &EmptyNameError{Field: field}
	}
	return nil
}
