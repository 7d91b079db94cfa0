package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionState struct {
	IsConnected bool    `json:"isConnected"`
	IsDemoMode  bool    `json:"isDemoMode"`
	Address     *string `json:"address"`
	Balance     string  `json:"balance"`
	Role        *string `json:"role"`
	ChainID     *int64  `json:"chainId"`
}

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runFlychain(t, binaryPath, home, "connect", "--mode", "demo", "--role", "admin")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runFlychain(t, binaryPath, home, "balance", "set", "99.95")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runFlychain(t, binaryPath, home, "status", "--json")
	require.NoError(t, err, "stderr: %s", stderr)

	var state sessionState
	require.NoError(t, json.Unmarshal([]byte(stdout), &state))
	assert.True(t, state.IsConnected)
	assert.True(t, state.IsDemoMode)
	assert.Equal(t, "99.95", state.Balance)
	require.NotNil(t, state.Role)
	assert.Equal(t, "admin", *state.Role)

	_, stderr, err = runFlychain(t, binaryPath, home, "disconnect")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runFlychain(t, binaryPath, home, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "disconnected")
}

func TestSmokeExitCodeOnError(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runFlychain(t, binaryPath, home, "connect", "--mode", "ledger")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr, "unknown connection mode")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "flychain-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/flychain")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build flychain binary: %s", string(output))
	return binaryPath
}

func runFlychain(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"FLYCHAIN_WALLET_HANDSHAKE_DELAY=0s",
		"FLYCHAIN_KEYSTORE_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
