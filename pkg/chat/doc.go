// Package chat orchestrates multilingual chat queries over the completion
// provider, the session store, and the speech engine.
//
// Invariants:
// - Screened queries are refused before any session or provider access.
// - The history sentinel never mutates state.
// - Voice synthesis failures degrade to a text-only result, never an error.
package chat
