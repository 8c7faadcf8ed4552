// Package registry implements a concurrency-safe, cycle-free mapping from
// alias names to canonical names.
//
// Any name, canonical or aliased, resolves deterministically to exactly one
// canonical identifier. Aliases may chain (an alias of an alias) and many
// aliases may share one target, but a registration that would close a loop
// through the alias graph is rejected up front. ResolveAliases rewrites
// every entry through a caller-supplied Resolver in one pass, which is how
// late-stage placeholder substitution reaches names registered earlier.
//
// The registry stores name indirections only. It never creates or holds the
// objects those names refer to; that is the job of whatever component owns
// the registry instance.
package registry
