package registry

// EventKind classifies a diagnostic event.
type EventKind string

const (
	// EventOverride is emitted when a permitted re-registration rebinds an
	// existing alias to a new target.
	EventOverride EventKind = "override"

	// EventConflict is emitted when a registration is rejected because the
	// alias is bound to a different target and overriding is disabled.
	EventConflict EventKind = "conflict"
)

// Event describes an override or conflict observed during registration.
type Event struct {
	Kind     EventKind
	Alias    string
	Target   string // the target the caller asked for
	Previous string // the target the alias was bound to
}

// EventSink receives diagnostic events. Sinks run synchronously on the
// registering goroutine and must return quickly; a panicking sink never
// fails the operation that triggered it.
type EventSink func(Event)

func (r *Registry) emit(e Event) {
	defer func() { _ = recover() }()
	r.sink(e)
}

// logSink is the default sink. It mirrors the event onto the registry's
// logger at debug level.
func (r *Registry) logSink(e Event) {
	r.logger.Debug("Alias event.",
		"kind", string(e.Kind), "alias", e.Alias, "target", e.Target, "previous", e.Previous)
}
