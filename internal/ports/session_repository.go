package ports

import (
	"context"

	"github.com/bnema/flychain-wallet/internal/domain"
)

// SessionRepository persists the session snapshot. Load returns domain.ErrSnapshotNotFound
// when nothing was saved yet.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}
