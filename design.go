package nanocurve

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/nanocurve/codec"
	"github.com/hupe1980/nanocurve/curve"
	"github.com/hupe1980/nanocurve/store"
)

// Design is the facade over a nanostructure design: the helix curve
// descriptors, the reference planes, and the helix parameters every curve
// instantiation shares.
//
// Reads are safe from any goroutine. Mutation goes through the stores'
// sessions; at most one session per store is open at a time.
type Design struct {
	helices *store.Store[curve.CurveDescriptor]
	planes  *store.Planes

	codec       codec.Codec
	compression Compression
	logger      *Logger

	mu     sync.Mutex
	params curve.HelixParameters
	cache  map[store.ID]cachedCurve
}

// cachedCurve memoizes one instantiation. The descriptor is kept for
// identity comparison: descriptors are immutable values, so equality means
// the cached curve is still valid.
type cachedCurve struct {
	desc curve.CurveDescriptor
	c    curve.Curved
}

// New creates an empty design.
func New(optFns ...Option) *Design {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return &Design{
		helices:     store.New[curve.CurveDescriptor](),
		planes:      store.NewPlanes(),
		codec:       o.codec,
		compression: o.compression,
		logger:      o.logger,
		params:      o.params,
		cache:       make(map[store.ID]cachedCurve),
	}
}

// Helices returns the store of helix curve descriptors.
func (d *Design) Helices() *store.Store[curve.CurveDescriptor] { return d.helices }

// Planes returns the store of reference planes.
func (d *Design) Planes() *store.Planes { return d.planes }

// HelixParameters returns the parameters shared by all instantiations.
func (d *Design) HelixParameters() curve.HelixParameters {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params
}

// SetHelixParameters replaces the shared parameters. Every cached curve is
// invalidated: instantiation is a function of descriptor plus parameters.
func (d *Design) SetHelixParameters(p curve.HelixParameters) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.params = p
	clear(d.cache)
}

// Instantiate returns the runtime curve for the helix descriptor id,
// memoized until the descriptor or the helix parameters change.
func (d *Design) Instantiate(ctx context.Context, id store.ID) (curve.Curved, error) {
	desc, ok := d.helices.Get(id)
	if !ok {
		return nil, ErrNotFound
	}

	d.mu.Lock()
	if hit, ok := d.cache[id]; ok && hit.desc == desc {
		d.mu.Unlock()
		return hit.c, nil
	}
	params := d.params
	d.mu.Unlock()

	c, err := desc.Instantiate(&params)
	d.logger.LogInstantiate(ctx, id, desc.Kind, err)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.cache[id] = cachedCurve{desc: desc, c: c}
	d.mu.Unlock()
	return c, nil
}

// InstantiateAll instantiates every helix descriptor of the current
// snapshot concurrently and returns the curves keyed by helix ID. The first
// instantiation error cancels the remaining work.
func (d *Design) InstantiateAll(ctx context.Context) (map[store.ID]curve.Curved, error) {
	snap := d.helices.Snapshot()
	ids := snap.Keys()

	d.mu.Lock()
	params := d.params
	d.mu.Unlock()

	curves := make([]curve.Curved, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, id := range ids {
		desc, _ := snap.Get(id)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := desc.Instantiate(&params)
			d.logger.LogInstantiate(ctx, id, desc.Kind, err)
			if err != nil {
				return err
			}
			curves[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[store.ID]curve.Curved, len(ids))
	d.mu.Lock()
	for i, id := range ids {
		desc, _ := snap.Get(id)
		d.cache[id] = cachedCurve{desc: desc, c: curves[i]}
		out[id] = curves[i]
	}
	d.mu.Unlock()
	return out, nil
}
