package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StorageBackendFile, cfg.StorageBackend)
	assert.Equal(t, filepath.Join(home, ".flychain", "flychain-wallet-storage.toml"), cfg.StoragePath)
	assert.Equal(t, KeystoreBackendPass, cfg.KeystoreBackend)
	assert.Equal(t, filepath.Join(home, ".flychain", "keystore"), cfg.KeystorePath)
	assert.Equal(t, 1500*time.Millisecond, cfg.HandshakeDelay)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogConsole)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".flychain")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[storage]
backend = "memory"

[wallet]
handshake_delay = "10ms"

[log]
level = "debug"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StorageBackendMemory, cfg.StorageBackend)
	assert.Equal(t, 10*time.Millisecond, cfg.HandshakeDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FLYCHAIN_STORAGE_PATH", filepath.Join(home, "custom.toml"))
	t.Setenv("FLYCHAIN_WALLET_HANDSHAKE_DELAY", "0s")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "custom.toml"), cfg.StoragePath)
	assert.Zero(t, cfg.HandshakeDelay)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLYCHAIN_STORAGE_BACKEND", "localstorage")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported storage backend")
}

func TestLoadRejectsUnknownKeystoreBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLYCHAIN_KEYSTORE_BACKEND", "ledger")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported keystore backend")
}
