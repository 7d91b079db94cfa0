package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".flychain"
	envPrefix  = "FLYCHAIN"

	// SnapshotKey names the persisted session snapshot.
	SnapshotKey = "flychain-wallet-storage"

	StorageBackendFile   = "file"
	StorageBackendMemory = "memory"
	StorageBackendNone   = "none"

	KeystoreBackendPass = "pass"
	KeystoreBackendFile = "file"

	StorageBackendKey  = "storage.backend"
	StoragePathKey     = "storage.path"
	KeystoreBackendKey = "keystore.backend"
	KeystorePathKey    = "keystore.path"
	HandshakeDelayKey  = "wallet.handshake_delay"
	LogPathKey         = "log.path"
	LogLevelKey        = "log.level"
	LogConsoleKey      = "log.console"
	defaultLogLevel    = "info"
	defaultHandshake   = 1500 * time.Millisecond
	defaultStorageKind = StorageBackendFile
)

type Config struct {
	StorageBackend  string
	StoragePath     string
	KeystoreBackend string
	KeystorePath    string
	HandshakeDelay  time.Duration
	LogPath         string
	LogLevel        string
	LogConsole      bool
}

// Load reads ~/.flychain/config.toml when present and applies FLYCHAIN_* env overrides.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(root)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(StorageBackendKey, defaultStorageKind)
	v.SetDefault(StoragePathKey, filepath.Join(root, SnapshotKey+".toml"))
	v.SetDefault(KeystoreBackendKey, KeystoreBackendPass)
	v.SetDefault(KeystorePathKey, filepath.Join(root, "keystore"))
	v.SetDefault(HandshakeDelayKey, defaultHandshake)
	v.SetDefault(LogPathKey, filepath.Join(root, "logs", "flychain.log"))
	v.SetDefault(LogLevelKey, defaultLogLevel)
	v.SetDefault(LogConsoleKey, false)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		StorageBackend:  strings.ToLower(strings.TrimSpace(v.GetString(StorageBackendKey))),
		StoragePath:     v.GetString(StoragePathKey),
		KeystoreBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeystoreBackendKey))),
		KeystorePath:    v.GetString(KeystorePathKey),
		HandshakeDelay:  v.GetDuration(HandshakeDelayKey),
		LogPath:         v.GetString(LogPathKey),
		LogLevel:        v.GetString(LogLevelKey),
		LogConsole:      v.GetBool(LogConsoleKey),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageBackend {
	case StorageBackendFile, StorageBackendMemory, StorageBackendNone:
	default:
		return fmt.Errorf("unsupported storage backend %q", c.StorageBackend)
	}
	if c.StorageBackend == StorageBackendFile && strings.TrimSpace(c.StoragePath) == "" {
		return errors.New("storage path is empty")
	}
	switch c.KeystoreBackend {
	case KeystoreBackendPass, KeystoreBackendFile:
	default:
		return fmt.Errorf("unsupported keystore backend %q", c.KeystoreBackend)
	}
	if strings.TrimSpace(c.KeystorePath) == "" {
		return errors.New("keystore path is empty")
	}
	if c.HandshakeDelay < 0 {
		return fmt.Errorf("handshake delay must not be negative, got %s", c.HandshakeDelay)
	}

	return nil
}
