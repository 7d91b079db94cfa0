package memory

import (
	"context"
	"testing"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryLoadBeforeSave(t *testing.T) {
	t.Parallel()

	_, err := NewSessionRepository().Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSessionRepositorySaveThenLoad(t *testing.T) {
	t.Parallel()

	repo := NewSessionRepository()
	demo, err := domain.DemoSession(domain.RoleUser)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), demo))
	require.NoError(t, repo.Save(context.Background(), demo.WithBalance("3.00")))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.00", got.Balance())
	assert.Equal(t, 2, repo.Saves())
}

func TestSessionRepositoryCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewSessionRepository()
	assert.ErrorIs(t, repo.Save(ctx, domain.Disconnected()), context.Canceled)
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, repo.Saves())
}

func TestNopRepository(t *testing.T) {
	t.Parallel()

	var repo NopRepository
	demo, err := domain.DemoSession(domain.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), demo))
	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
