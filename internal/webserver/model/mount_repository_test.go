package model

import (
	"context"
	"testing"
	"time"

	"github.com/svera/booktable/internal/graphql"
)

func blockingWatch(ctx context.Context) *graphql.Query {
	return graphql.WatchFunc(ctx, func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
}

func TestMountRepository(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repository := NewMountRepository(time.Minute)
	repository.now = func() time.Time { return now }

	mount := repository.Start(blockingWatch)
	if mount.ID == "" {
		t.Fatal("Expected mount to have an ID")
	}

	if got, ok := repository.Get(mount.ID); !ok || got != mount {
		t.Errorf("Expected to retrieve mount %s", mount.ID)
	}
	if _, ok := repository.Get("00000000-0000-0000-0000-000000000000"); ok {
		t.Error("Expected unknown mount not to be found")
	}

	t.Run("Expired mounts are dropped and their queries cancelled", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		if _, ok := repository.Get(mount.ID); ok {
			t.Error("Expected expired mount not to be found")
		}

		state := mount.Query.Wait(context.Background())
		if _, ok := state.(graphql.Failed); !ok {
			t.Errorf("Expected cancelled query to fail, got %#v", state)
		}
		if repository.Len() != 0 {
			t.Errorf("Expected no mounts left, got %d", repository.Len())
		}
	})

	t.Run("Removed mounts are not found", func(t *testing.T) {
		other := repository.Start(blockingWatch)
		repository.Remove(other.ID)
		if _, ok := repository.Get(other.ID); ok {
			t.Error("Expected removed mount not to be found")
		}
		other.Query.Cancel()
	})
}
