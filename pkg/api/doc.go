// Package api exposes chat, translation, and speech over HTTP.
//
// Invariants:
// - Unknown sessions and bad indexes map to the client-error class (400).
// - External service failures map to 500 with the underlying message.
// - Degraded voice synthesis is communicated by an absent audio field only.
package api
