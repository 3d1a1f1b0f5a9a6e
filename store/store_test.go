package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nanocurve/store"
)

func TestStore_PushAssignsDenseIDs(t *testing.T) {
	st := store.New[string]()

	sess, err := st.Edit()
	require.NoError(t, err)
	assert.Equal(t, store.ID(0), sess.Push("a"))
	assert.Equal(t, store.ID(1), sess.Push("b"))
	assert.Equal(t, store.ID(2), sess.Push("c"))
	sess.Close()

	assert.Equal(t, 3, st.Len())
	got, ok := st.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", got)
	assert.Equal(t, []store.ID{0, 1, 2}, st.Keys())
}

func TestStore_PushAfterRemoveContinuesFromMax(t *testing.T) {
	st := store.FromSlice([]string{"a", "b", "c"})

	sess, err := st.Edit()
	require.NoError(t, err)
	_, err = sess.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, store.ID(3), sess.Push("d"))
	sess.Close()

	assert.Equal(t, []store.ID{0, 2, 3}, st.Keys())
}

func TestStore_RemoveThenNotFound(t *testing.T) {
	st := store.FromSlice([]string{"a", "b"})

	sess, err := st.Edit()
	require.NoError(t, err)
	v, err := sess.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = sess.Remove(0)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = sess.GetMut(0)
	assert.ErrorIs(t, err, store.ErrNotFound)
	sess.Close()

	assert.False(t, st.ContainsKey(0))
	assert.Equal(t, 1, st.Len())
}

func TestStore_SnapshotUnaffectedByLaterEdits(t *testing.T) {
	st := store.FromSlice([]string{"a", "b"})
	snap := st.Snapshot()

	sess, err := st.Edit()
	require.NoError(t, err)
	sess.Push("c")
	_, err = sess.Remove(0)
	require.NoError(t, err)
	ptr, err := sess.GetMut(1)
	require.NoError(t, err)
	*ptr = "B"
	sess.Close()

	// The pre-edit snapshot still shows the old state in full.
	assert.Equal(t, 2, snap.Len())
	old, ok := snap.Get(0)
	require.True(t, ok)
	assert.Equal(t, "a", old)
	old, _ = snap.Get(1)
	assert.Equal(t, "b", old)

	// The store shows the new state.
	cur, _ := st.Get(1)
	assert.Equal(t, "B", cur)
	assert.False(t, st.ContainsKey(0))
	assert.True(t, st.ContainsKey(2))
}

type payload struct {
	Tags []string
}

func (p payload) Clone() payload {
	return payload{Tags: append([]string(nil), p.Tags...)}
}

func TestStore_GetMutClonesSharedValues(t *testing.T) {
	st := store.FromSlice([]payload{{Tags: []string{"x"}}})
	snap := st.Snapshot()

	sess, err := st.Edit()
	require.NoError(t, err)
	ptr, err := sess.GetMut(0)
	require.NoError(t, err)
	ptr.Tags[0] = "y"
	ptr.Tags = append(ptr.Tags, "z")
	sess.Close()

	// The deep clone shields the old snapshot from in-place mutation.
	old, _ := snap.Get(0)
	assert.Equal(t, []string{"x"}, old.Tags)
	cur, _ := st.Get(0)
	assert.Equal(t, []string{"y", "z"}, cur.Tags)
}

func TestStore_GetMutClonesOnlyOnce(t *testing.T) {
	st := store.FromSlice([]string{"a"})

	sess, err := st.Edit()
	require.NoError(t, err)
	p1, err := sess.GetMut(0)
	require.NoError(t, err)
	p2, err := sess.GetMut(0)
	require.NoError(t, err)
	assert.Same(t, p1, p2)
	sess.Close()
}

func TestStore_SingleWriter(t *testing.T) {
	st := store.New[int]()

	sess, err := st.Edit()
	require.NoError(t, err)

	_, err = st.Edit()
	assert.ErrorIs(t, err, store.ErrSessionActive)

	sess.Close()
	sess2, err := st.Edit()
	require.NoError(t, err)
	sess2.Close()
}

func TestStore_NoopSessionKeepsContents(t *testing.T) {
	st := store.FromSlice([]string{"a"})

	sess, err := st.Edit()
	require.NoError(t, err)
	v, ok := sess.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	sess.Close()

	assert.Equal(t, []store.ID{0}, st.Keys())
	assert.Equal(t, []string{"a"}, st.Values())
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	st := store.New[int]()
	sess, err := st.Edit()
	require.NoError(t, err)
	sess.Push(1)
	sess.Close()
	sess.Close()

	assert.Equal(t, 1, st.Len())
}

func TestStore_ClosedSessionRefusesMutation(t *testing.T) {
	st := store.FromSlice([]string{"a"})

	sess, err := st.Edit()
	require.NoError(t, err)
	sess.Close()

	assert.PanicsWithValue(t, "store: use of closed session", func() { sess.Push("b") })
	assert.PanicsWithValue(t, "store: use of closed session", func() { _, _ = sess.GetMut(0) })
	assert.PanicsWithValue(t, "store: use of closed session", func() { _ = sess.Set(0, "x") })
	assert.PanicsWithValue(t, "store: use of closed session", func() { _, _ = sess.Remove(0) })

	// The published state stays exactly as closed.
	assert.Equal(t, 1, st.Len())
	got, _ := st.Get(0)
	assert.Equal(t, "a", got)
}

func TestStore_Dirty(t *testing.T) {
	st := store.FromSlice([]string{"a", "b", "c"})

	sess, err := st.Edit()
	require.NoError(t, err)
	assert.True(t, sess.Dirty().IsEmpty())

	sess.Push("d")
	_, err = sess.GetMut(1)
	require.NoError(t, err)
	_, err = sess.Remove(2)
	require.NoError(t, err)

	dirty := sess.Dirty()
	assert.Equal(t, []uint32{1, 2, 3}, dirty.ToArray())
	sess.Close()
}

func TestStore_IterAscending(t *testing.T) {
	st := store.FromMap(map[store.ID]string{4: "e", 0: "a", 2: "c"})

	var ids []store.ID
	var vals []string
	for id, v := range st.Iter() {
		ids = append(ids, id)
		vals = append(vals, v)
	}
	assert.Equal(t, []store.ID{0, 2, 4}, ids)
	assert.Equal(t, []string{"a", "c", "e"}, vals)
	assert.Equal(t, vals, st.Values())
}

func TestStore_SessionSet(t *testing.T) {
	st := store.FromSlice([]string{"a"})

	sess, err := st.Edit()
	require.NoError(t, err)
	require.NoError(t, sess.Set(0, "A"))
	assert.ErrorIs(t, sess.Set(9, "x"), store.ErrNotFound)
	sess.Close()

	got, _ := st.Get(0)
	assert.Equal(t, "A", got)
}
