package ports

import "context"

// KeyStore keeps wallet private keys, hex encoded, indexed by account address.
type KeyStore interface {
	StoreKey(ctx context.Context, address string, privateKeyHex string) error
	LoadKey(ctx context.Context, address string) (string, error)
	DeleteKey(ctx context.Context, address string) error
}
