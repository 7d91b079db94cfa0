package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/flychain-wallet/internal/adapters/keystore/file"
	passstore "github.com/bnema/flychain-wallet/internal/adapters/keystore/pass"
	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/bnema/flychain-wallet/internal/ports"
)

// Store writes to the primary backend and falls back to the secondary one when the
// primary fails. Keys may live in either backend, so DeleteKey clears both.
type Store struct {
	primary  ports.KeyStore
	fallback ports.KeyStore
}

var _ ports.KeyStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary keystore is nil")
	errNilFallbackStore = errors.New("fallback keystore is nil")
)

func NewStore(primary ports.KeyStore, fallback ports.KeyStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KeyStore, fallback ports.KeyStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) StoreKey(ctx context.Context, address string, privateKeyHex string) error {
	err := s.primary.StoreKey(ctx, address, privateKeyHex)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.StoreKey(ctx, address, privateKeyHex)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary keystore store failed: %w; fallback keystore store failed: %w", err, fallbackErr)
}

func (s *Store) LoadKey(ctx context.Context, address string) (string, error) {
	value, err := s.primary.LoadKey(ctx, address)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.LoadKey(ctx, address)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary keystore load failed: %w; fallback keystore load failed: %w", err, fallbackErr)
}

func (s *Store) DeleteKey(ctx context.Context, address string) error {
	err := s.primary.DeleteKey(ctx, address)
	if err != nil && shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.DeleteKey(ctx, address)
	if err != nil && fallbackErr != nil {
		return fmt.Errorf("delete wallet key from every keystore: %w", errors.Join(err, fallbackErr))
	}
	if fallbackErr != nil {
		return fmt.Errorf("fallback keystore delete failed: %w", fallbackErr)
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, domain.ErrInvalidAddress)
}
