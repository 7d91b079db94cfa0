package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/bnema/flychain-wallet/internal/ports"
)

const (
	storeDirMode = 0o700
	keyFileMode  = 0o600
	keyFileExt   = ".key"
)

// Store writes one file per wallet under root, named after the lowercased address.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.KeyStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) StoreKey(ctx context.Context, address string, privateKeyHex string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForAddress(address)
	if err != nil {
		return err
	}
	if strings.TrimSpace(privateKeyHex) == "" {
		return fmt.Errorf("store wallet key %s: private key is empty", address)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create keystore directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(privateKeyHex), keyFileMode); err != nil {
		return fmt.Errorf("write wallet key %s: %w", address, err)
	}

	return nil
}

func (s *Store) LoadKey(ctx context.Context, address string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForAddress(address)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("wallet key %s: %w", address, domain.ErrKeyNotFound)
		}
		return "", fmt.Errorf("read wallet key %s: %w", address, err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *Store) DeleteKey(ctx context.Context, address string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForAddress(address)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete wallet key %s: %w", address, err)
	}

	return nil
}

func (s *Store) pathForAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if !domain.ValidAddress(trimmed) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	return filepath.Join(s.root, strings.ToLower(trimmed)+keyFileExt), nil
}
