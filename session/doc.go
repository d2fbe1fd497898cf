// Package session houses concrete implementations of the core.SessionStore.
// The interface itself (and the State struct) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents
// higher level packages from depending on concrete storage.
//
// Unlike profile records, session state has no durable backend by design: a
// session's State lives exactly as long as its conversation.
package session
