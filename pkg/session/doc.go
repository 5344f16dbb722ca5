// Package session manages persistent chat transcripts backed by one JSON
// document.
//
// Invariants:
// - Session ids are unique within the store.
// - Turns are only mutated by explicit edit (content + time) or removed
//   wholesale by session deletion; never reordered or dropped individually.
// - Every mutation rewrites the whole file; corrupt content on load degrades
//   to an empty store.
//
// Usage:
//
//	store, _ := session.Open("/data/chat_histories.json", logger)
//	id, history := store.Resolve("")
//	_ = store.Append(id, session.UserTurn("hello", time.Now()))
//	_ = store.Close()
package session
