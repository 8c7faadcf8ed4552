package registry

// Resolver maps a name to a possibly different name. Returning false (or an
// empty string) means the name did not resolve; entries it belonged to are
// dropped.
type Resolver func(name string) (string, bool)

// ResolveAliases applies resolve to every registered alias and target and
// reconciles the registry to the resolved pairs in a single exclusive pass.
// Decisions are computed from a point-in-time snapshot of the entries, so
// resolving one entry never observes partial results of another; mutations
// land on the live structure.
//
// For each original (alias, target) pair:
//   - either side absent, or resolved alias == resolved target: the entry
//     is deleted;
//   - alias unchanged, target changed: the target is rewritten in place;
//   - alias changed: if the resolved alias already maps to the same
//     resolved target the original entry is redundant and is dropped; if it
//     maps to a different target the pass fails with *AliasConflictError;
//     otherwise the entry is re-keyed, re-running the cycle check for the
//     new pair (*CircularAliasError on failure).
//
// A failed pass aborts at the offending entry and leaves earlier rewrites
// in place. Callers needing all-or-nothing semantics must treat failure as
// fatal to the surrounding startup sequence.
func (r *Registry) ResolveAliases(resolve Resolver) error {
	if resolve == nil {
		panic("registry: nil resolver")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]Entry, 0, len(r.order))
	for _, alias := range r.order {
		snapshot = append(snapshot, Entry{Alias: alias, Target: r.entries[alias]})
	}

	for _, ent := range snapshot {
		resolvedAlias, aliasOK := resolve(ent.Alias)
		resolvedTarget, targetOK := resolve(ent.Target)

		switch {
		case !aliasOK || !targetOK || resolvedAlias == "" || resolvedTarget == "" || resolvedAlias == resolvedTarget:
			r.deleteLocked(ent.Alias)
			r.logger.Debug("Alias dropped during resolve pass.", "alias", ent.Alias, "target", ent.Target)

		case resolvedAlias != ent.Alias:
			if existing, ok := r.entries[resolvedAlias]; ok {
				if existing == resolvedTarget {
					// The resolved pair is already registered; the
					// placeholder entry is redundant.
					r.deleteLocked(ent.Alias)
					continue
				}
				r.emit(Event{Kind: EventConflict, Alias: resolvedAlias, Target: resolvedTarget, Previous: existing})
				return &AliasConflictError{Alias: resolvedAlias, Existing: existing, Requested: resolvedTarget}
			}
			if r.hasAliasLocked(resolvedAlias, resolvedTarget) {
				return &CircularAliasError{Name: resolvedTarget, Alias: resolvedAlias}
			}
			r.deleteLocked(ent.Alias)
			r.setLocked(resolvedAlias, resolvedTarget)
			r.logger.Debug("Alias re-keyed during resolve pass.",
				"alias", ent.Alias, "resolved_alias", resolvedAlias, "resolved_target", resolvedTarget)

		case resolvedTarget != ent.Target:
			r.setLocked(ent.Alias, resolvedTarget)
			r.logger.Debug("Alias target rewritten during resolve pass.",
				"alias", ent.Alias, "target", ent.Target, "resolved_target", resolvedTarget)
		}
	}
	return nil
}
