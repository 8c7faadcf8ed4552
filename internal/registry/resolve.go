package registry

import "fmt"

// maxChainDepth bounds every alias-chain walk. Registration-time cycle
// checks keep the graph acyclic, so the cap can only be hit if that
// invariant was broken; a corrupted graph fails loudly instead of looping.
const maxChainDepth = 256

// CanonicalName follows the alias chain from name until it reaches a name
// with no entry of its own and returns that terminal name. A name that is
// not an alias resolves to itself.
//
// CanonicalName reads the lock-free mirror: during a concurrent mutation
// the result may reflect the registry as of an instant earlier.
func (r *Registry) CanonicalName(name string) string {
	canonical := name
	for depth := 0; ; depth++ {
		if depth > maxChainDepth {
			panic(fmt.Sprintf("registry: alias chain from %q exceeds %d links, graph invariant violated", name, maxChainDepth))
		}
		next, ok := r.lookup.Load(canonical)
		if !ok {
			return canonical
		}
		canonical = next.(string)
	}
}

// Aliases returns every name that resolves, directly or transitively, to
// name. Order is depth-first over registration order: deterministic for a
// given registration history, but not sorted.
func (r *Registry) Aliases(name string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Explicit work-list rather than call recursion. seen is redundant on
	// an intact graph but keeps the walk bounded no matter what.
	var result []string
	seen := map[string]bool{name: true}
	stack := r.pushDirectLocked(nil, name, seen)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, n)
		stack = r.pushDirectLocked(stack, n, seen)
	}
	return result
}

// pushDirectLocked pushes the direct aliases of name onto stack in reverse
// registration order, so that popping visits them oldest-first. Callers
// must hold mu.
func (r *Registry) pushDirectLocked(stack []string, name string, seen map[string]bool) []string {
	var direct []string
	for _, alias := range r.order {
		if r.entries[alias] == name && !seen[alias] {
			seen[alias] = true
			direct = append(direct, alias)
		}
	}
	for i := len(direct) - 1; i >= 0; i-- {
		stack = append(stack, direct[i])
	}
	return stack
}

// HasAlias reports whether alias is registered, directly or through a chain
// of intermediate aliases, as an alias of name.
func (r *Registry) HasAlias(name, alias string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasAliasLocked(name, alias)
}

// hasAliasLocked is the cycle probe consulted before every mutation: adding
// the edge alias -> name is only safe when hasAliasLocked(alias, name) is
// false. Callers must hold mu.
func (r *Registry) hasAliasLocked(name, alias string) bool {
	stack := []string{name}
	seen := map[string]bool{name: true}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range r.order {
			if r.entries[a] != n || seen[a] {
				continue
			}
			if a == alias {
				return true
			}
			seen[a] = true
			stack = append(stack, a)
		}
	}
	return false
}
