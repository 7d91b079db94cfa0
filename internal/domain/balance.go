package domain

import (
	"math/big"
	"strings"
)

const DefaultBalance = "0.00"

// ValidBalance reports whether raw parses as a non-negative decimal.
func ValidBalance(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed != raw {
		return false
	}
	if strings.ContainsAny(trimmed, "eE/") {
		return false
	}

	value, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return false
	}

	return value.Sign() >= 0
}
