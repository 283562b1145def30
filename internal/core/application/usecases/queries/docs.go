// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
//
// Every query handler resolves its scope key and reads through the view
// cache: a clean cached view is served as-is, a dirty or absent view is
// fetched from the entity store. Role checks run before the cache is
// consulted, so an unauthorized read never materializes a cache entry.
package queries
