// Package config provides board preset management for the Minesweeper server.
//
// The config package handles:
//   - Loading presets from JSON files in the configs directory
//   - Falling back to the built-in easy, medium and hard presets
//   - Default preset selection and caching
//   - Saving validated presets back to disk
//
// Configuration Format:
//
// Each JSON file describes one board:
//
//	{
//	  "name": "easy",
//	  "description": "Beginner: 8x8 board with 10 mines",
//	  "height": 8,
//	  "width": 8,
//	  "mines": 10,
//	  "tile_size": 48,
//	  "messages": {"welcome": "...", "victory": "...", "defeat": "..."}
//	}
//
// An optional "layout" array of '*' and '.' rows fixes the mine positions,
// which is how tutorial boards are built.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("medium")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// Files shadow built-in presets of the same name. Every loaded preset passes
// engine.ValidateGameConfig; failures wrap ErrInvalidConfig.
package config
