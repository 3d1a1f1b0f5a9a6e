package store

import (
	"errors"
	"iter"
	"sort"
	"sync/atomic"
)

var (
	// ErrNotFound is returned when no value exists for the requested ID.
	ErrNotFound = errors.New("store: id not found")
	// ErrSessionActive is returned by Edit while another session is open.
	ErrSessionActive = errors.New("store: edit session already active")
)

// ID is the handle of a stored value. IDs are assigned by Push, densely from
// zero, and are never reassigned while their value exists.
type ID uint32

// Cloner is implemented by value types that need deep copies during
// copy-on-write. Types that do not implement it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Snapshot is an immutable view of the store at one point in time. It is
// never invalidated: a reader holding a snapshot observes the exact state it
// was taken from, regardless of later mutation.
type Snapshot[T any] struct {
	ids   []ID       // ascending
	items map[ID]*T
}

// Get returns the value for id.
func (s *Snapshot[T]) Get(id ID) (T, bool) {
	if v, ok := s.items[id]; ok {
		return *v, true
	}
	var zero T
	return zero, false
}

// ContainsKey reports whether id is present.
func (s *Snapshot[T]) ContainsKey(id ID) bool {
	_, ok := s.items[id]
	return ok
}

// Len returns the number of stored values.
func (s *Snapshot[T]) Len() int { return len(s.ids) }

// Keys returns the IDs in ascending order. The returned slice is shared;
// callers must not modify it.
func (s *Snapshot[T]) Keys() []ID { return s.ids }

// Iter iterates over all values in ascending ID order.
func (s *Snapshot[T]) Iter() iter.Seq2[ID, T] {
	return func(yield func(ID, T) bool) {
		for _, id := range s.ids {
			if !yield(id, *s.items[id]) {
				return
			}
		}
	}
}

// Values returns the values in ascending ID order.
func (s *Snapshot[T]) Values() []T {
	out := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, *s.items[id])
	}
	return out
}

// Store is an identifier-indexed collection of values of type T. Reads are
// lock-free through an atomically published snapshot; writes go through an
// exclusive Session.
//
// The zero value is not usable; use New, FromSlice or FromMap.
type Store[T any] struct {
	current atomic.Pointer[Snapshot[T]]
	editing atomic.Bool
}

// New creates an empty store.
func New[T any]() *Store[T] {
	st := &Store[T]{}
	st.current.Store(&Snapshot[T]{items: map[ID]*T{}})
	return st
}

// FromSlice creates a store holding the given values under IDs 0..n-1.
func FromSlice[T any](values []T) *Store[T] {
	snap := &Snapshot[T]{
		ids:   make([]ID, 0, len(values)),
		items: make(map[ID]*T, len(values)),
	}
	for i := range values {
		id := ID(i)
		v := values[i]
		snap.ids = append(snap.ids, id)
		snap.items[id] = &v
	}
	st := &Store[T]{}
	st.current.Store(snap)
	return st
}

// FromMap creates a store holding the given values under their given IDs.
func FromMap[T any](values map[ID]T) *Store[T] {
	snap := &Snapshot[T]{
		ids:   make([]ID, 0, len(values)),
		items: make(map[ID]*T, len(values)),
	}
	for id := range values {
		v := values[id]
		snap.ids = append(snap.ids, id)
		snap.items[id] = &v
	}
	sort.Slice(snap.ids, func(i, j int) bool { return snap.ids[i] < snap.ids[j] })
	st := &Store[T]{}
	st.current.Store(snap)
	return st
}

// Snapshot returns the current immutable view.
func (st *Store[T]) Snapshot() *Snapshot[T] {
	return st.current.Load()
}

// Get returns the value for id in the current snapshot.
func (st *Store[T]) Get(id ID) (T, bool) { return st.Snapshot().Get(id) }

// ContainsKey reports whether id is present in the current snapshot.
func (st *Store[T]) ContainsKey(id ID) bool { return st.Snapshot().ContainsKey(id) }

// Len returns the number of values in the current snapshot.
func (st *Store[T]) Len() int { return st.Snapshot().Len() }

// Keys returns the IDs of the current snapshot in ascending order.
func (st *Store[T]) Keys() []ID { return st.Snapshot().Keys() }

// Values returns the values of the current snapshot in ascending ID order.
func (st *Store[T]) Values() []T { return st.Snapshot().Values() }

// Iter iterates over the current snapshot in ascending ID order.
func (st *Store[T]) Iter() iter.Seq2[ID, T] { return st.Snapshot().Iter() }

// Edit opens a mutation session. Only one session may be open at a time; a
// second call before Close fails with ErrSessionActive rather than blocking
// or corrupting state.
func (st *Store[T]) Edit() (*Session[T], error) {
	if !st.editing.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}

	base := st.current.Load()
	work := &Snapshot[T]{
		ids:   append([]ID(nil), base.ids...),
		items: make(map[ID]*T, len(base.items)),
	}
	for id, v := range base.items {
		work.items[id] = v
	}

	return newSession(st, work), nil
}

// cloneValue duplicates a stored value, using Clone when the type provides
// one and plain assignment otherwise.
func cloneValue[T any](v *T) *T {
	if c, ok := any(*v).(Cloner[T]); ok {
		dup := c.Clone()
		return &dup
	}
	dup := *v
	return &dup
}
