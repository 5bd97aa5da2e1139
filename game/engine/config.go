package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Messages are the status texts shown to the player
type Messages struct {
	Welcome  string `json:"welcome"`
	Victory  string `json:"victory"`
	Defeat   string `json:"defeat"`
	NoChange string `json:"no_change,omitempty"`
	Status   string `json:"status,omitempty"`
}

// GameConfig represents a board preset loaded from JSON
type GameConfig struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Height      int      `json:"height"`
	Width       int      `json:"width"`
	Mines       int      `json:"mines"`
	TileSize    float64  `json:"tile_size,omitempty"`
	Layout      []string `json:"layout,omitempty"` // fixed mine layout; random placement when empty
	Messages    Messages `json:"messages"`
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil: %w", ErrInvalidConfiguration)
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required: %w", ErrInvalidConfiguration)
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required: %w", ErrInvalidConfiguration)
	}

	if config.Height < 1 || config.Height > MaxDimension {
		return fmt.Errorf("config validation: height must be between 1 and %d, got %d: %w",
			MaxDimension, config.Height, ErrInvalidConfiguration)
	}
	if config.Width < 1 || config.Width > MaxDimension {
		return fmt.Errorf("config validation: width must be between 1 and %d, got %d: %w",
			MaxDimension, config.Width, ErrInvalidConfiguration)
	}
	if err := ValidateDimensions(config.Height, config.Width, config.Mines); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if config.TileSize < 0 {
		return fmt.Errorf("config validation: tile_size must be positive, got %v: %w",
			config.TileSize, ErrInvalidConfiguration)
	}

	if len(config.Layout) > 0 {
		values, mines, err := ParseLayout(config.Layout)
		if err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
		if len(values) != config.Height || len(values[0]) != config.Width {
			return fmt.Errorf("config validation: layout is %dx%d but config is %dx%d: %w",
				len(values), len(values[0]), config.Height, config.Width, ErrInvalidConfiguration)
		}
		if mines != config.Mines {
			return fmt.Errorf("config validation: layout has %d mines but config declares %d: %w",
				mines, config.Mines, ErrInvalidConfiguration)
		}
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required: %w", ErrInvalidConfiguration)
	}
	if config.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required: %w", ErrInvalidConfiguration)
	}
	if config.Messages.Defeat == "" {
		return fmt.Errorf("config validation: messages.defeat is required: %w", ErrInvalidConfiguration)
	}
	if config.Messages.Status != "" && strings.Count(config.Messages.Status, "%d") != 2 {
		return fmt.Errorf("config validation: messages.status must contain %%d twice (revealed, total): %w",
			ErrInvalidConfiguration)
	}

	return nil
}

// EffectiveTileSize returns the configured tile size or the default
func (c *GameConfig) EffectiveTileSize() float64 {
	if c.TileSize > 0 {
		return c.TileSize
	}
	return DefaultTileSize
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultMessages() Messages {
	return Messages{
		Welcome:  "Welcome! Left click reveals, right click flags.",
		Victory:  "You won! Every safe tile is revealed.",
		Defeat:   "Game over! You hit a mine.",
		NoChange: "Nothing happened.",
		Status:   "Revealed %d/%d safe tiles",
	}
}

// Presets returns the built-in Easy, Medium and Hard configurations
func Presets() []*GameConfig {
	return []*GameConfig{
		{Name: "easy", Description: "8x8 board with 10 mines", Height: 8, Width: 8, Mines: 10, TileSize: DefaultTileSize, Messages: defaultMessages()},
		{Name: "medium", Description: "16x16 board with 40 mines", Height: 16, Width: 16, Mines: 40, TileSize: DefaultTileSize, Messages: defaultMessages()},
		{Name: "hard", Description: "16 rows by 30 columns with 99 mines", Height: 16, Width: 30, Mines: 99, TileSize: DefaultTileSize, Messages: defaultMessages()},
	}
}

// PresetByName returns a copy of the built-in preset with the given name
func PresetByName(name string) (*GameConfig, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}
