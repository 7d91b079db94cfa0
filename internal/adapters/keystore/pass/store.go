package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/flychain-wallet/internal/domain"
	"github.com/bnema/flychain-wallet/internal/ports"
)

const entryPrefix = "flychain/wallets"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	run runFunc
}

var _ ports.KeyStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

// EntryName is the pass entry holding the key of address.
func EntryName(address string) string {
	return entryPrefix + "/" + strings.ToLower(strings.TrimSpace(address)) + "/private_key"
}

func (s *Store) StoreKey(ctx context.Context, address string, privateKeyHex string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !domain.ValidAddress(address) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	entry := EntryName(address)
	_, stderr, err := s.run(ctx, privateKeyHex+"\n", "insert", "-m", "-f", entry)
	if err != nil {
		return formatError("insert", entry, err, stderr)
	}

	return nil
}

func (s *Store) LoadKey(ctx context.Context, address string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !domain.ValidAddress(address) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	entry := EntryName(address)
	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return "", fmt.Errorf("pass show %q: %w", entry, domain.ErrKeyNotFound)
		}
		return "", formatError("show", entry, err, stderr)
	}

	return strings.TrimRight(stdout, "\r\n"), nil
}

func (s *Store) DeleteKey(ctx context.Context, address string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !domain.ValidAddress(address) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	entry := EntryName(address)
	_, stderr, err := s.run(ctx, "", "rm", "-f", entry)
	if err != nil {
		return formatError("rm", entry, err, stderr)
	}

	return nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
