// Package completion wraps hosted chat completion APIs behind one provider
// interface.
//
// Invariants:
// - Errors from the remote API are wrapped and propagated; no retries here.
// - System instructions travel separately from conversation messages.
package completion
