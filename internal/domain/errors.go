package domain

import "errors"

var (
	ErrUnknownMode       = errors.New("unknown connection mode")
	ErrUnknownRole       = errors.New("unknown role")
	ErrInvalidAddress    = errors.New("invalid wallet address")
	ErrInvalidChainID    = errors.New("invalid chain id")
	ErrSnapshotNotFound  = errors.New("session snapshot not found")
	ErrConnectInProgress = errors.New("connect already in progress")
	ErrAlreadyConnected  = errors.New("wallet already connected in another mode")
	ErrHandshakeFailed   = errors.New("wallet handshake failed")
	ErrKeyNotFound       = errors.New("wallet key not found")
)
