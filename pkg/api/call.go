package api

import "sync/atomic"

// Call tracks a request started with Executor.Start.
type Call struct {
	res     *Result
	loading atomic.Bool
	done    chan struct{}
}

func newCall() *Call {
	c := &Call{
		res:  &Result{Loading: true},
		done: make(chan struct{}),
	}
	c.loading.Store(true)
	return c
}

// Loading reports whether the request is still in flight.
func (c *Call) Loading() bool { return c.loading.Load() }

// Done is closed once the request has settled.
func (c *Call) Done() <-chan struct{} { return c.done }

// Wait blocks until the request settles and returns its envelope.
func (c *Call) Wait() *Result {
	<-c.done
	return c.res
}
