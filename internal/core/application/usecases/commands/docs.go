// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
//
// All commands follow a consistent shape: a guard-validated command value
// object, a handler holding the entity store and the view cache, and a
// Handle method that validates, authorizes the acting party, performs the
// store write, and — only after the write succeeds — publishes the
// mutation's invalidation set so the caller's next reads refetch.
package commands
