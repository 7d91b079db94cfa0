package domain

import (
	"fmt"
	"strings"
)

// Mode tells how a connection was established.
type Mode string

const (
	ModeDemo Mode = "demo"
	ModeReal Mode = "real"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeDemo, ModeReal:
		return true
	default:
		return false
	}
}

func ParseMode(raw string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}

	return mode, nil
}
