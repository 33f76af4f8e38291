package graphql

import (
	"context"
	"sync"
)

// Fetch retrieves the payload of a query
type Fetch func(ctx context.Context) (any, error)

// Query tracks a single in-flight operation. It starts as Loading and settles
// exactly once, into either Failed or Fetched.
type Query struct {
	mu     sync.Mutex
	state  Result
	done   chan struct{}
	cancel context.CancelFunc
}

// Watch executes op through client in the background
func Watch(ctx context.Context, client Client, op Operation, variables map[string]any) *Query {
	return WatchFunc(ctx, func(ctx context.Context) (any, error) {
		return client.Execute(ctx, op, variables)
	})
}

// WatchFunc runs fetch in the background and tracks its outcome
func WatchFunc(ctx context.Context, fetch Fetch) *Query {
	ctx, cancel := context.WithCancel(ctx)
	q := &Query{
		state:  Loading{},
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer cancel()
		data, err := fetch(ctx)
		if err != nil {
			q.settle(Failed{Message: err.Error()})
			return
		}
		q.settle(Fetched{Data: data})
	}()

	return q
}

// State returns the current state of the query
func (q *Query) State() Result {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Done is closed once the query has settled
func (q *Query) Done() <-chan struct{} {
	return q.done
}

// Wait blocks until the query settles or ctx is done, and returns the state at that point
func (q *Query) Wait(ctx context.Context) Result {
	select {
	case <-q.done:
	case <-ctx.Done():
	}
	return q.State()
}

// Cancel aborts the query if it has not settled yet
func (q *Query) Cancel() {
	q.cancel()
}

func (q *Query) settle(state Result) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, loading := q.state.(Loading); !loading {
		return
	}
	q.state = state
	close(q.done)
}
