package toml

import (
	"fmt"

	"github.com/bnema/flychain-wallet/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Storage *snapshotSchema `toml:"flychain-wallet-storage,omitempty"`
}

type snapshotSchema struct {
	Version   int         `toml:"version"`
	UpdatedAt string      `toml:"updated_at,omitempty"`
	State     stateSchema `toml:"state"`
}

type stateSchema struct {
	IsConnected bool   `toml:"is_connected"`
	IsDemoMode  bool   `toml:"is_demo_mode"`
	Address     string `toml:"address,omitempty"`
	Balance     string `toml:"balance"`
	Role        string `toml:"role,omitempty"`
	ChainID     int64  `toml:"chain_id,omitempty"`
}

func (s *snapshotSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	// A connected balance is stored verbatim, including "".
	if !s.State.IsConnected && s.State.Balance == "" {
		s.State.Balance = domain.DefaultBalance
	}
}

func (s snapshotSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(session domain.Session) stateSchema {
	state := stateSchema{
		IsConnected: session.IsConnected(),
		IsDemoMode:  session.IsDemoMode(),
		Balance:     session.Balance(),
	}
	if !session.IsConnected() {
		return state
	}

	state.Address = session.Address()
	state.Role = string(session.Role())
	state.ChainID = session.ChainID()
	return state
}

func fromSchema(state stateSchema) (domain.Session, error) {
	if !state.IsConnected {
		if state.IsDemoMode {
			return domain.Session{}, fmt.Errorf("demo mode recorded on a disconnected session")
		}
		return domain.Disconnected(), nil
	}

	mode := domain.ModeReal
	if state.IsDemoMode {
		mode = domain.ModeDemo
	}

	session, err := domain.NewConnected(mode, state.Address, state.Balance, domain.Role(state.Role), state.ChainID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("decode connected session: %w", err)
	}

	return session, nil
}
