package application

import (
	"context"
	"fmt"

	"github.com/bnema/flychain-wallet/internal/domain"
)

type ConnectCommand struct {
	Mode domain.Mode
	Role domain.Role
}

// ParseConnectCommand normalizes raw flag values. The role is only checked in demo
// mode; a real connection always starts as a user.
func ParseConnectCommand(rawMode, rawRole string) (ConnectCommand, error) {
	mode, err := domain.ParseMode(rawMode)
	if err != nil {
		return ConnectCommand{}, fmt.Errorf("parse connect mode: %w", err)
	}

	if mode == domain.ModeReal {
		return ConnectCommand{Mode: mode, Role: domain.RoleUser}, nil
	}

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return ConnectCommand{}, fmt.Errorf("parse connect role: %w", err)
	}

	return ConnectCommand{Mode: mode, Role: role}, nil
}

func (s *SessionStore) Execute(ctx context.Context, cmd ConnectCommand) error {
	return s.Connect(ctx, cmd.Mode, cmd.Role)
}
