package service

import (
	"time"

	"github.com/wricardo/mcp-training/minesweeper/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
	Camera         engine.Camera      `json:"camera"`
}

// ActionResult contains the result of a reveal, flag, chord or click
type ActionResult struct {
	Success   bool              `json:"success"` // false when the action changed nothing
	Action    string            `json:"action"`
	Position  engine.Position   `json:"position"`
	Changed   []engine.Position `json:"changed"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// Event types emitted by game operations
const (
	EventReveal   = "reveal"
	EventFlag     = "flag"
	EventUnflag   = "unflag"
	EventChord    = "chord"
	EventNoChange = "no_change"
	EventGameOver = "game_over"
	EventVictory  = "victory"
	EventReset    = "reset"
)

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position,omitempty"`
}

// HoverResult describes what lies under a screen point
type HoverResult struct {
	Screen  engine.Point            `json:"screen"`
	World   engine.Point            `json:"world"`
	OnBoard bool                    `json:"on_board"`
	Cell    *engine.CellDescription `json:"cell,omitempty"`
}

// HistoryOptions configures action history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated action history
type HistoryResponse struct {
	Actions      []engine.ActionHistoryEntry `json:"actions"`
	TotalActions int                         `json:"total_actions"`
	Page         int                         `json:"page"`
	PageSize     int                         `json:"page_size"`
	TotalPages   int                         `json:"total_pages"`
	HasNext      bool                        `json:"has_next"`
	HasPrevious  bool                        `json:"has_previous"`
}

// ConfigInfo provides information about a board preset
type ConfigInfo struct {
	Filename    string `json:"filename,omitempty"` // empty for built-in presets
	ConfigID    string `json:"config_id"`          // The identifier to use for session creation
	Name        string `json:"name"`
	Description string `json:"description"`
	Height      int    `json:"height"`
	Width       int    `json:"width"`
	Mines       int    `json:"mines"`
	FixedLayout bool   `json:"fixed_layout"`
}
