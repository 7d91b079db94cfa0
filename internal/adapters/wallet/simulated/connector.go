package simulated

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/rand"
	"time"

	"github.com/bnema/flychain-wallet/internal/ports"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	DefaultDelay = 1500 * time.Millisecond

	minBalanceCents = 10
	maxBalanceCents = 10_000
)

// Connector stands in for a browser wallet. Each handshake mints a fresh secp256k1
// account, keeps its private key in the keystore and reports a random balance.
type Connector struct {
	keys         ports.KeyStore
	delay        time.Duration
	generateKey  func() (*ecdsa.PrivateKey, error)
	balanceCents func() int64
}

var _ ports.WalletConnector = (*Connector)(nil)

type Option func(*Connector)

func WithDelay(delay time.Duration) Option {
	return func(c *Connector) {
		c.delay = delay
	}
}

func WithKeyGenerator(generate func() (*ecdsa.PrivateKey, error)) Option {
	return func(c *Connector) {
		c.generateKey = generate
	}
}

// WithBalanceSource overrides the balance draw. The source returns hundredths.
func WithBalanceSource(source func() int64) Option {
	return func(c *Connector) {
		c.balanceCents = source
	}
}

func NewConnector(keys ports.KeyStore, opts ...Option) *Connector {
	c := &Connector{
		keys:        keys,
		delay:       DefaultDelay,
		generateKey: crypto.GenerateKey,
		balanceCents: func() int64 {
			return minBalanceCents + rand.Int63n(maxBalanceCents-minBalanceCents)
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Connector) Handshake(ctx context.Context) (ports.WalletAccount, error) {
	if err := c.wait(ctx); err != nil {
		return ports.WalletAccount{}, err
	}

	key, err := c.generateKey()
	if err != nil {
		return ports.WalletAccount{}, fmt.Errorf("generate wallet key: %w", err)
	}

	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	if err := c.keys.StoreKey(ctx, address, hexutil.Encode(crypto.FromECDSA(key))); err != nil {
		return ports.WalletAccount{}, fmt.Errorf("store wallet key: %w", err)
	}

	return ports.WalletAccount{
		Address: address,
		Balance: formatCents(c.balanceCents()),
	}, nil
}

func (c *Connector) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func formatCents(cents int64) string {
	if cents < 0 {
		cents = 0
	}

	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
