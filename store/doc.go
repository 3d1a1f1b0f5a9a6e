// Package store provides a versioned, identifier-indexed collection with
// copy-on-write semantics.
//
// Readers obtain immutable snapshots that stay valid for their whole
// lifetime, no matter how the store is mutated afterwards. All mutation goes
// through a Session obtained from Edit; at most one session is open at a
// time, and its changes become visible atomically when it is closed.
package store
