// Package viewcache implements the client-side consistency layer: a scoped
// cache of previously-fetched entity views plus the static rule table
// mapping each mutation to the set of cached views it invalidates.
//
// The invariant the package upholds: after any successful mutation
// completes, every scope key in its invalidation set is marked dirty before
// the mutation's result reaches the caller, so a dependent read issued
// immediately afterwards never observes a stale cached value. Abandoned or
// superseded in-flight fetches are discarded rather than allowed to clear
// the dirty flag.
package viewcache
