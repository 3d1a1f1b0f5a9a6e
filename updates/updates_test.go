package updates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nanocurve/updates"
)

func TestReader_PollEmpty(t *testing.T) {
	reg := updates.NewRegistry()
	tok := reg.Register()
	progress := make(chan float64, 4)
	results := make(chan string, 4)

	r := updates.NewReader(reg, tok, progress, results)
	assert.Empty(t, r.Poll())
}

func TestReader_ProgressBeforeResult(t *testing.T) {
	reg := updates.NewRegistry()
	tok := reg.Register()
	progress := make(chan float64, 4)
	results := make(chan string, 4)
	r := updates.NewReader(reg, tok, progress, results)

	progress <- 0.25
	results <- "done"

	got := r.Poll()
	require.Len(t, got, 2)
	assert.Equal(t, updates.UpdateProgress, got[0].Kind)
	assert.Equal(t, 0.25, got[0].Progress)
	assert.Equal(t, updates.UpdateResult, got[1].Kind)
	assert.Equal(t, "done", got[1].Result)
}

func TestReader_DrainsAtMostOneOfEach(t *testing.T) {
	reg := updates.NewRegistry()
	tok := reg.Register()
	progress := make(chan float64, 4)
	results := make(chan string, 4)
	r := updates.NewReader(reg, tok, progress, results)

	progress <- 0.1
	progress <- 0.2

	got := r.Poll()
	require.Len(t, got, 1)
	assert.Equal(t, 0.1, got[0].Progress)

	got = r.Poll()
	require.Len(t, got, 1)
	assert.Equal(t, 0.2, got[0].Progress)
}

func TestReader_ExpiresOnceThenDetaches(t *testing.T) {
	reg := updates.NewRegistry()
	tok := reg.Register()
	progress := make(chan float64, 4)
	results := make(chan string, 4)
	r := updates.NewReader(reg, tok, progress, results)

	progress <- 0.5
	reg.Invalidate(tok)

	got := r.Poll()
	require.Len(t, got, 1)
	assert.Equal(t, updates.UpdateExpired, got[0].Kind)
	assert.True(t, r.Detached())

	// Pending channel data is never delivered after detach.
	assert.Empty(t, r.Poll())
}

func TestRegistry_TokensAreIndependent(t *testing.T) {
	reg := updates.NewRegistry()
	a := reg.Register()
	b := reg.Register()
	assert.NotEqual(t, a.String(), b.String())

	reg.Invalidate(a)
	assert.False(t, reg.Alive(a))
	assert.True(t, reg.Alive(b))

	// Killing a dead token changes nothing.
	reg.Invalidate(a)
	assert.True(t, reg.Alive(b))
}
