package registry

import (
	"testing"

	"pgregory.net/rapid"
)

// The properties below hold for every reachable registry state: whatever
// sequence of registrations and removals got us here, canonicalization is a
// fixed point and no name is ever its own (transitive) alias.
func TestRegistryProperties(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f"}

	rapid.Check(t, func(rt *rapid.T) {
		r := newTestRegistry()

		ops := rapid.IntRange(0, 60).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			name := rapid.SampledFrom(pool).Draw(rt, "name")
			alias := rapid.SampledFrom(pool).Draw(rt, "alias")
			if rapid.Bool().Draw(rt, "remove") {
				_ = r.RemoveAlias(alias)
			} else {
				_ = r.RegisterAlias(name, alias)
			}
		}

		for _, name := range pool {
			canonical := r.CanonicalName(name)
			if got := r.CanonicalName(canonical); got != canonical {
				rt.Fatalf("canonicalName(%q) = %q but canonicalName(%q) = %q; not a fixed point",
					name, canonical, canonical, got)
			}
			for _, alias := range r.Aliases(name) {
				if alias == name {
					rt.Fatalf("name %q appears in its own alias closure", name)
				}
			}
			if r.IsAlias(canonical) {
				rt.Fatalf("canonical name %q still has an outgoing alias entry", canonical)
			}
		}
	})
}

// A resolve pass over any reachable state must preserve acyclicity when it
// succeeds.
func TestResolveAliasesPreservesInvariants(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}

	rapid.Check(t, func(rt *rapid.T) {
		r := newTestRegistry()

		ops := rapid.IntRange(0, 30).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			name := rapid.SampledFrom(pool).Draw(rt, "name")
			alias := rapid.SampledFrom(pool).Draw(rt, "alias")
			_ = r.RegisterAlias(name, alias)
		}

		suffix := rapid.SampledFrom([]string{"", "-x", "-y"}).Draw(rt, "suffix")
		if err := r.ResolveAliases(func(name string) (string, bool) {
			return name + suffix, true
		}); err != nil {
			return // an aborted pass is a legal outcome
		}

		for _, ent := range r.Entries() {
			canonical := r.CanonicalName(ent.Alias)
			if r.IsAlias(canonical) {
				rt.Fatalf("entry %q -> %q resolves to non-terminal name %q", ent.Alias, ent.Target, canonical)
			}
		}
	})
}
