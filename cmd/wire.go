package cmd

import (
	"context"
	"fmt"

	chainstore "github.com/bnema/flychain-wallet/internal/adapters/keystore/chain"
	filestore "github.com/bnema/flychain-wallet/internal/adapters/keystore/file"
	statusadapter "github.com/bnema/flychain-wallet/internal/adapters/render/status"
	memoryrepo "github.com/bnema/flychain-wallet/internal/adapters/repo/memory"
	tomlrepo "github.com/bnema/flychain-wallet/internal/adapters/repo/toml"
	"github.com/bnema/flychain-wallet/internal/adapters/wallet/simulated"
	"github.com/bnema/flychain-wallet/internal/application"
	"github.com/bnema/flychain-wallet/internal/config"
	"github.com/bnema/flychain-wallet/internal/pkg/logger"
	"github.com/bnema/flychain-wallet/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	store          *application.SessionStore
	keys           ports.KeyStore
	log            logger.Logger
	cfg            config.Config
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewZapLogger(logger.Options{
		FilePath: cfg.LogPath,
		Level:    cfg.LogLevel,
		Console:  cfg.LogConsole,
	})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := newSessionRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	keys, err := newKeyStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire keystore: %w", err)
	}

	connector := simulated.NewConnector(keys, simulated.WithDelay(cfg.HandshakeDelay))
	store := application.NewSessionStore(repo, connector, log)
	if err := store.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("rehydrate session: %w", err)
	}

	return &app{
		store:          store,
		keys:           keys,
		log:            log,
		cfg:            cfg,
		statusRenderer: statusadapter.Render,
	}, nil
}

func newSessionRepository(cfg config.Config) (ports.SessionRepository, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		return memoryrepo.NewSessionRepository(), nil
	case config.StorageBackendNone:
		return memoryrepo.NopRepository{}, nil
	default:
		return tomlrepo.NewSessionRepository(cfg.StoragePath, ports.SystemClock{})
	}
}

func newKeyStore(cfg config.Config) (ports.KeyStore, error) {
	if cfg.KeystoreBackend == config.KeystoreBackendFile {
		return filestore.NewStore(cfg.KeystorePath), nil
	}

	return chainstore.NewPassFirstWithFileFallback(cfg.KeystorePath)
}

func (a *app) storageLabel() string {
	if a.cfg.StorageBackend == config.StorageBackendFile {
		return fmt.Sprintf("%s (%s)", a.cfg.StorageBackend, a.cfg.StoragePath)
	}

	return a.cfg.StorageBackend
}
