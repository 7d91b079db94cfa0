package status

import (
	"testing"

	"github.com/bnema/flychain-wallet/internal/application"
	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDisconnected(t *testing.T) {
	output, err := Render(application.Status{Session: domain.Disconnected()}, RenderOptions{Storage: "memory"})

	require.NoError(t, err)
	assert.Contains(t, output, "FlyChain Wallet")
	assert.Contains(t, output, "storage: memory")
	assert.Contains(t, output, "disconnected")
	assert.Contains(t, output, "flychain connect")
	assert.NotContains(t, output, "balance:")
	assert.NotContains(t, output, "pending")
}

func TestRenderDisconnectedWhileConnecting(t *testing.T) {
	output, err := Render(application.Status{Session: domain.Disconnected(), Connecting: true}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "connection pending")
	assert.NotContains(t, output, "storage:")
}

func TestRenderDemoAdmin(t *testing.T) {
	session, err := domain.DemoSession(domain.RoleAdmin)
	require.NoError(t, err)

	output, err := Render(application.Status{Session: session}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "connected")
	assert.Contains(t, output, "[demo]")
	assert.Contains(t, output, "[admin]")
	assert.Contains(t, output, "mode:")
	assert.Contains(t, output, domain.DemoAdminAddress)
	assert.Contains(t, output, "125.50 AVAX")
	assert.Contains(t, output, "43113 (Avalanche Fuji)")
}

func TestRenderRealUserShortAddress(t *testing.T) {
	session, err := domain.NewConnected(domain.ModeReal, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "17.03", domain.RoleUser, domain.DemoChainID)
	require.NoError(t, err)

	output, err := Render(application.Status{Session: session}, RenderOptions{ShortAddress: true})

	require.NoError(t, err)
	assert.Contains(t, output, "real")
	assert.Contains(t, output, "0x5aAe…eAed")
	assert.NotContains(t, output, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	assert.NotContains(t, output, "[demo]")
	assert.NotContains(t, output, "[admin]")
}

func TestRenderKeepsUnvalidatedBalanceVerbatim(t *testing.T) {
	session, err := domain.DemoSession(domain.RoleUser)
	require.NoError(t, err)

	output, err := Render(application.Status{Session: session.WithBalance("lots")}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "lots")
	assert.NotContains(t, output, "lots AVAX")
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "0x742d…f44e", shortenAddress(domain.DemoUserAddress))
	assert.Equal(t, "0x1234", shortenAddress("0x1234"))
}
