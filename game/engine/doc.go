// Package engine provides the core game logic for Minesweeper.
//
// The engine package implements the game mechanics including:
//   - Grid generation with uniform random mine placement
//   - Reveal, flood reveal over zero regions, and chording
//   - Flag toggling and win/loss detection
//   - World geometry for clicks and a pan/zoom camera
//   - Configuration loading and validation
//
// Core Types:
//
// Board is the state machine that owns the cell grid. GameEngine wraps one
// Board together with its GameConfig, the action history and the status
// message, and implements the Engine interface. GameState is the snapshot
// handed to transports and renderers; it never exposes hidden cell values.
//
// Usage:
//
//	config, _ := engine.PresetByName("easy")
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Reveal a cell, then poll the outcome
//	changed := gameEngine.Reveal(3, 4)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Revealing a mine ends the game and discloses every mine. Revealing a zero
// cell floods its connected zero region and the numbered cells around it.
// Chording a revealed number whose flagged neighbors match its value reveals
// the remaining hidden neighbors. The game is won once every safe cell is
// revealed. After either outcome the board is frozen.
package engine
