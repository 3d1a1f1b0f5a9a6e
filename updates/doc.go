// Package updates receives progress and results from a background optimizer
// without ever blocking the caller.
//
// The optimizer owns the sending side of two channels; the design thread
// polls them through a Reader. Liveness is tracked by registration tokens:
// the optimizer's owner registers a token, hands it to the reader, and
// invalidates it when the computation is abandoned. A reader whose token has
// died reports a single Expired update and detaches. The package starts no
// goroutines of its own.
package updates
