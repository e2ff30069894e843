// Package config reads the operator overrides that steer the player update
// pipeline. All settings are environment variables so they can be flipped on a
// running deployment without a rebuild.
package config

import (
	"os"
	"strconv"

	"github.com/tjmnmk/inv-sig-helper/internal/logger"
)

const (
	// EnvForcePlayerID forces a specific player ID (8-digit lowercase hex).
	// "0", absent, or unparsable means no override.
	EnvForcePlayerID = "FORCE_PLAYER_ID"

	// EnvUpdateDisabled disables automatic player updates once a player has
	// ever been populated. "1" or "true" disables.
	EnvUpdateDisabled = "PLAYER_UPDATE_DISABLED"
)

var log = logger.WithComponent(logger.ComponentApp)

// ForcedPlayerID returns the operator-forced player ID, or 0 when no override
// is active.
func ForcedPlayerID() uint32 {
	raw := os.Getenv(EnvForcePlayerID)
	if raw == "" || raw == "0" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		log.Warn("ignoring unparsable forced player ID", map[string]interface{}{
			"value": raw,
		})
		return 0
	}
	return uint32(id)
}

// UpdateDisabled reports whether automatic player updates are administratively
// disabled.
func UpdateDisabled() bool {
	switch os.Getenv(EnvUpdateDisabled) {
	case "1", "true":
		return true
	}
	return false
}
