package updates

import (
	"sync"

	"github.com/google/uuid"
)

// Token identifies one registered background computation. A token stays
// alive until its owner invalidates it; liveness checks are deterministic.
type Token struct {
	id uuid.UUID
}

// String returns the token's unique identifier.
func (t Token) String() string { return t.id.String() }

// Registry tracks which registration tokens are still alive.
type Registry struct {
	mu   sync.Mutex
	live map[uuid.UUID]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[uuid.UUID]struct{})}
}

// Register issues a new live token.
func (r *Registry) Register() Token {
	tok := Token{id: uuid.New()}
	r.mu.Lock()
	r.live[tok.id] = struct{}{}
	r.mu.Unlock()
	return tok
}

// Invalidate kills the token. Invalidating an already-dead token is a no-op.
func (r *Registry) Invalidate(tok Token) {
	r.mu.Lock()
	delete(r.live, tok.id)
	r.mu.Unlock()
}

// Alive reports whether the token has not been invalidated.
func (r *Registry) Alive(tok Token) bool {
	r.mu.Lock()
	_, ok := r.live[tok.id]
	r.mu.Unlock()
	return ok
}
