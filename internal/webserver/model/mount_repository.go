package model

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/svera/booktable/internal/graphql"
)

// MountRepository keeps pending mounts in memory. Expired mounts are dropped,
// and their queries cancelled, whenever the repository is accessed.
type MountRepository struct {
	mu     sync.Mutex
	mounts map[string]*Mount
	ttl    time.Duration
	now    func() time.Time
}

func NewMountRepository(ttl time.Duration) *MountRepository {
	return &MountRepository{
		mounts: make(map[string]*Mount),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Start runs watch and registers the resulting query under a new mount
func (r *MountRepository) Start(watch func(ctx context.Context) *graphql.Query) *Mount {
	mount := &Mount{
		ID:    uuid.NewString(),
		Query: watch(context.Background()),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	mount.ExpiresAt = r.now().Add(r.ttl)
	r.mounts[mount.ID] = mount
	return mount
}

// Get returns the mount identified by ID, if it exists and has not expired
func (r *MountRepository) Get(ID string) (*Mount, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	mount, ok := r.mounts[ID]
	return mount, ok
}

// Remove forgets a mount. Its query is left untouched.
func (r *MountRepository) Remove(ID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.mounts, ID)
}

// Len returns the number of live mounts
func (r *MountRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	return len(r.mounts)
}

func (r *MountRepository) sweep() {
	now := r.now()
	for ID, mount := range r.mounts {
		if now.After(mount.ExpiresAt) {
			mount.Query.Cancel()
			delete(r.mounts, ID)
		}
	}
}
