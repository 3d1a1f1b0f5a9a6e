package store

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Session is an exclusive mutation scope over a Store. It works on a
// structural clone of the published snapshot whose values are still shared
// by reference; a value is only duplicated the first time GetMut touches it.
//
// None of the session's changes are visible to readers until Close. A
// Session is not safe for concurrent use, and mutating one after Close
// panics: by then the working copy is the published snapshot and a silent
// write would corrupt it behind the single-writer guard.
type Session[T any] struct {
	store *Store[T]
	work  *Snapshot[T]
	// owned marks values created or already duplicated by this session;
	// they may be mutated in place without affecting published snapshots.
	owned  map[ID]struct{}
	dirty  *roaring.Bitmap
	closed bool
}

func newSession[T any](st *Store[T], work *Snapshot[T]) *Session[T] {
	return &Session[T]{
		store: st,
		work:  work,
		owned: make(map[ID]struct{}),
		dirty: roaring.New(),
	}
}

// Get returns the value for id as seen by this session, including
// not-yet-published changes.
func (s *Session[T]) Get(id ID) (T, bool) { return s.work.Get(id) }

// Len returns the number of values as seen by this session.
func (s *Session[T]) Len() int { return s.work.Len() }

// mustOpen guards every mutation against use after Close.
func (s *Session[T]) mustOpen() {
	if s.closed {
		panic("store: use of closed session")
	}
}

// Push stores v under the smallest ID above every existing one (zero for an
// empty store) and returns that ID. Push panics if the session is closed.
func (s *Session[T]) Push(v T) ID {
	s.mustOpen()
	var id ID
	if n := len(s.work.ids); n > 0 {
		id = s.work.ids[n-1] + 1
	}
	s.work.ids = append(s.work.ids, id)
	s.work.items[id] = &v
	s.owned[id] = struct{}{}
	s.dirty.Add(uint32(id))
	return id
}

// GetMut returns a pointer through which the value for id may be mutated.
// If the value is still shared with a published snapshot it is duplicated
// first, so readers of older snapshots are never affected. GetMut panics if
// the session is closed.
func (s *Session[T]) GetMut(id ID) (*T, error) {
	s.mustOpen()
	v, ok := s.work.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if _, own := s.owned[id]; !own {
		v = cloneValue(v)
		s.work.items[id] = v
		s.owned[id] = struct{}{}
	}
	s.dirty.Add(uint32(id))
	return v, nil
}

// Set replaces the value for id. Set panics if the session is closed.
func (s *Session[T]) Set(id ID, v T) error {
	s.mustOpen()
	if _, ok := s.work.items[id]; !ok {
		return ErrNotFound
	}
	s.work.items[id] = &v
	s.owned[id] = struct{}{}
	s.dirty.Add(uint32(id))
	return nil
}

// Remove deletes the value for id and returns it. Remove panics if the
// session is closed.
func (s *Session[T]) Remove(id ID) (T, error) {
	s.mustOpen()
	v, ok := s.work.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	delete(s.work.items, id)
	delete(s.owned, id)

	i := sort.Search(len(s.work.ids), func(i int) bool { return s.work.ids[i] >= id })
	s.work.ids = append(s.work.ids[:i], s.work.ids[i+1:]...)

	s.dirty.Add(uint32(id))
	return *v, nil
}

// Dirty returns the set of IDs touched by this session so far. The bitmap is
// a copy; mutating it does not affect the session.
func (s *Session[T]) Dirty() *roaring.Bitmap {
	return s.dirty.Clone()
}

// Close publishes the working copy as the store's new snapshot in one
// pointer swap, whether or not anything was edited, and releases the writer
// slot. Close is idempotent.
func (s *Session[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.store.current.Store(s.work)
	s.store.editing.Store(false)
}
