package memory

import (
	"context"
	"sync"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/bnema/flychain-wallet/internal/ports"
)

// SessionRepository keeps the snapshot for the lifetime of the value.
type SessionRepository struct {
	mu       sync.RWMutex
	snapshot *domain.Session
	saves    int
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return domain.Session{}, domain.ErrSnapshotNotFound
	}

	return *r.snapshot, nil
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = &session
	r.saves++
	return nil
}

// Saves reports how many snapshots were written.
func (r *SessionRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.saves
}

// NopRepository never has a snapshot and discards writes. Use it where no storage exists.
type NopRepository struct{}

var _ ports.SessionRepository = NopRepository{}

func (NopRepository) Load(context.Context) (domain.Session, error) {
	return domain.Session{}, domain.ErrSnapshotNotFound
}

func (NopRepository) Save(context.Context, domain.Session) error {
	return nil
}
