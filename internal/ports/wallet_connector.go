package ports

import "context"

type WalletAccount struct {
	Address string
	Balance string
}

// WalletConnector performs the real-wallet handshake.
type WalletConnector interface {
	Handshake(ctx context.Context) (WalletAccount, error)
}
