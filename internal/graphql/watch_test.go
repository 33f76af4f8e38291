package graphql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/svera/booktable/internal/graphql"
)

func TestWatchIsLoadingUntilSettled(t *testing.T) {
	inner := &stubClient{data: []any{}, block: make(chan struct{})}
	query := graphql.Watch(context.Background(), inner, listBooks, nil)

	require.Equal(t, graphql.Loading{}, query.State())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.Equal(t, graphql.Loading{}, query.Wait(ctx))

	close(inner.block)
	<-query.Done()
	require.Equal(t, graphql.Fetched{Data: []any{}}, query.State())
	require.Equal(t, 1, inner.Calls())
}

func TestWatchSettlesIntoFailure(t *testing.T) {
	inner := &stubClient{err: errors.New("network down")}
	query := graphql.Watch(context.Background(), inner, listBooks, nil)

	state := query.Wait(context.Background())
	require.Equal(t, graphql.Failed{Message: "network down"}, state)
}

func TestWatchCancel(t *testing.T) {
	inner := &stubClient{block: make(chan struct{})}
	query := graphql.Watch(context.Background(), inner, listBooks, nil)

	query.Cancel()
	state := query.Wait(context.Background())
	require.Equal(t, graphql.Failed{Message: context.Canceled.Error()}, state)
}

func TestWatchFuncSettlesOnce(t *testing.T) {
	query := graphql.WatchFunc(context.Background(), func(ctx context.Context) (any, error) {
		return "payload", nil
	})

	require.Equal(t, graphql.Fetched{Data: "payload"}, query.Wait(context.Background()))
	query.Cancel()
	require.Equal(t, graphql.Fetched{Data: "payload"}, query.State())
}
