package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"spades/internal/domain"
)

// GameConfig holds the tunable settings for the spades driver.
type GameConfig struct {
	WinScore          int    `json:"win_score"`
	DefaultDifficulty string `json:"default_difficulty"`
	BotIdentitiesPath string `json:"bot_identities_path"`
	// BotThinkDelayEnabled toggles the artificial pause before bot actions.
	// A pointer distinguishes an explicit false from an absent key.
	BotThinkDelayEnabled *bool  `json:"bot_think_delay_enabled"`
	LogLevel             string `json:"log_level"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil if not loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// WinScore returns the configured target score, defaulting to the standard
// 500 when no configuration is loaded.
func WinScore() int {
	if cfg == nil || cfg.WinScore <= 0 {
		return domain.DefaultWinScore
	}
	return cfg.WinScore
}

// ThinkDelayEnabled returns the bot think-delay toggle, defaulting to
// enabled when no configuration is loaded or the key is absent.
func ThinkDelayEnabled() bool {
	if cfg == nil || cfg.BotThinkDelayEnabled == nil {
		return true
	}
	return *cfg.BotThinkDelayEnabled
}

// DefaultDifficulty returns the configured difficulty, or "medium".
func DefaultDifficulty() string {
	if cfg == nil || cfg.DefaultDifficulty == "" {
		return "medium"
	}
	return cfg.DefaultDifficulty
}
