package application

import (
	"context"
	"testing"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnectCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mode    string
		role    string
		want    ConnectCommand
		wantErr error
	}{
		{name: "demo admin", mode: "demo", role: "admin", want: ConnectCommand{Mode: domain.ModeDemo, Role: domain.RoleAdmin}},
		{name: "demo mixed case", mode: " DEMO", role: "User ", want: ConnectCommand{Mode: domain.ModeDemo, Role: domain.RoleUser}},
		{name: "real ignores role", mode: "real", role: "admin", want: ConnectCommand{Mode: domain.ModeReal, Role: domain.RoleUser}},
		{name: "real ignores bad role", mode: "real", role: "root", want: ConnectCommand{Mode: domain.ModeReal, Role: domain.RoleUser}},
		{name: "unknown mode", mode: "ledger", role: "user", wantErr: domain.ErrUnknownMode},
		{name: "demo unknown role", mode: "demo", role: "root", wantErr: domain.ErrUnknownRole},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseConnectCommand(tt.mode, tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteConnectCommandAndStatus(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, nil)
	assert.Equal(t, Status{Session: domain.Disconnected()}, store.Status())

	cmd, err := ParseConnectCommand("demo", "admin")
	require.NoError(t, err)
	require.NoError(t, store.Execute(context.Background(), cmd))

	status := store.Status()
	assert.False(t, status.Connecting)
	assert.Equal(t, domain.DemoAdminAddress, status.Session.Address())
}
