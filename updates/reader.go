package updates

// UpdateKind discriminates what a poll observed.
type UpdateKind int

const (
	// UpdateProgress carries the optimizer's completion fraction.
	UpdateProgress UpdateKind = iota
	// UpdateResult carries a finished value.
	UpdateResult
	// UpdateExpired signals that the registration token died; the reader
	// emits it once and then stays silent.
	UpdateExpired
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateProgress:
		return "progress"
	case UpdateResult:
		return "result"
	case UpdateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Update is one observation made by a poll.
type Update[T any] struct {
	Kind     UpdateKind
	Progress float64 // set for UpdateProgress
	Result   T       // set for UpdateResult
}

// Reader polls the receiving side of an optimizer's progress and result
// channels. It never blocks and starts no goroutines; the owning thread
// calls Poll whenever it wants news.
type Reader[T any] struct {
	registry *Registry
	token    Token
	progress <-chan float64
	results  <-chan T
	detached bool
}

// NewReader attaches a reader to the given token and channels. The registry
// decides when the token is considered dead.
func NewReader[T any](reg *Registry, tok Token, progress <-chan float64, results <-chan T) *Reader[T] {
	return &Reader[T]{
		registry: reg,
		token:    tok,
		progress: progress,
		results:  results,
	}
}

// Detached reports whether the reader has observed its token's death and
// stopped polling.
func (r *Reader[T]) Detached() bool { return r.detached }

// Poll drains at most one progress value and one result, progress first,
// and returns them as updates. If the registration token has died, Poll
// returns a single Expired update and detaches; later calls return nothing.
func (r *Reader[T]) Poll() []Update[T] {
	if r.detached {
		return nil
	}
	if !r.registry.Alive(r.token) {
		r.detached = true
		return []Update[T]{{Kind: UpdateExpired}}
	}

	var out []Update[T]
	select {
	case p := <-r.progress:
		out = append(out, Update[T]{Kind: UpdateProgress, Progress: p})
	default:
	}
	select {
	case v := <-r.results:
		out = append(out, Update[T]{Kind: UpdateResult, Result: v})
	default:
	}
	return out
}
