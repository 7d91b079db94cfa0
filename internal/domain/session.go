package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Connection is the payload of a connected session.
type Connection struct {
	Mode    Mode
	Address string
	Balance string
	Role    Role
	ChainID int64
}

// Session is either disconnected (nil connection) or connected. The zero value is disconnected.
type Session struct {
	conn *Connection
}

// SessionState is the flat view of a Session. Optional fields are nil while disconnected.
type SessionState struct {
	IsConnected bool    `json:"isConnected"`
	IsDemoMode  bool    `json:"isDemoMode"`
	Address     *string `json:"address"`
	Balance     string  `json:"balance"`
	Role        *Role   `json:"role"`
	ChainID     *int64  `json:"chainId"`
}

func Disconnected() Session {
	return Session{}
}

func NewConnected(mode Mode, address, balance string, role Role, chainID int64) (Session, error) {
	if !mode.Valid() {
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if !role.Valid() {
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if !ValidAddress(address) {
		return Session{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if chainID <= 0 {
		return Session{}, fmt.Errorf("%w: %d", ErrInvalidChainID, chainID)
	}

	return Session{conn: &Connection{
		Mode:    mode,
		Address: address,
		Balance: balance,
		Role:    role,
		ChainID: chainID,
	}}, nil
}

// ValidAddress reports whether address is a 0x-prefixed 20-byte hex string.
func ValidAddress(address string) bool {
	return len(address) == 2+2*common.AddressLength && common.IsHexAddress(address) && address[:2] == "0x"
}

// Connection returns a copy of the connected payload.
func (s Session) Connection() (Connection, bool) {
	if s.conn == nil {
		return Connection{}, false
	}

	return *s.conn, true
}

func (s Session) IsConnected() bool {
	return s.conn != nil
}

// Mode returns the connection mode, or "" while disconnected.
func (s Session) Mode() Mode {
	if s.conn == nil {
		return ""
	}

	return s.conn.Mode
}

func (s Session) IsDemoMode() bool {
	return s.conn != nil && s.conn.Mode == ModeDemo
}

func (s Session) Address() string {
	if s.conn == nil {
		return ""
	}

	return s.conn.Address
}

func (s Session) Balance() string {
	if s.conn == nil {
		return DefaultBalance
	}

	return s.conn.Balance
}

func (s Session) Role() Role {
	if s.conn == nil {
		return ""
	}

	return s.conn.Role
}

func (s Session) ChainID() int64 {
	if s.conn == nil {
		return 0
	}

	return s.conn.ChainID
}

// WithBalance returns a copy with balance replaced. It has no effect on a disconnected session.
func (s Session) WithBalance(balance string) Session {
	if s.conn == nil {
		return s
	}

	conn := *s.conn
	conn.Balance = balance
	return Session{conn: &conn}
}

func (s Session) Equal(other Session) bool {
	if s.conn == nil || other.conn == nil {
		return s.conn == nil && other.conn == nil
	}

	return *s.conn == *other.conn
}

func (s Session) Flat() SessionState {
	if s.conn == nil {
		return SessionState{Balance: DefaultBalance}
	}

	address := s.conn.Address
	role := s.conn.Role
	chainID := s.conn.ChainID
	return SessionState{
		IsConnected: true,
		IsDemoMode:  s.conn.Mode == ModeDemo,
		Address:     &address,
		Balance:     s.conn.Balance,
		Role:        &role,
		ChainID:     &chainID,
	}
}

func (s Session) String() string {
	if s.conn == nil {
		return "disconnected"
	}

	return fmt.Sprintf("connected(%s, %s, %s, balance=%s, chain=%d)", s.conn.Mode, s.conn.Role, s.conn.Address, s.conn.Balance, s.conn.ChainID)
}
