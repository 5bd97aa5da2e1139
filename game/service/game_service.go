package service

import (
	"context"
	"time"

	"github.com/wricardo/mcp-training/minesweeper/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Reveal(ctx context.Context, sessionID string, row, col int) (*ActionResult, error)
	Flag(ctx context.Context, sessionID string, row, col int) (*ActionResult, error)
	Chord(ctx context.Context, sessionID string, row, col int) (*ActionResult, error)
	Click(ctx context.Context, sessionID string, screen engine.Point, button engine.Button) (*ActionResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// View
	Hover(ctx context.Context, sessionID string, screen engine.Point) (*HoverResult, error)
	Pan(ctx context.Context, sessionID string, from, to engine.Point) (*engine.Camera, error)
	Zoom(ctx context.Context, sessionID string, steps float64, anchor engine.Point) (*engine.Camera, error)
	DescribeCell(ctx context.Context, sessionID string, row, col int) (*engine.CellDescription, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetActionHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) (time.Time, error)
	LastAccessed(id string) (time.Time, error)
}

// ConfigManager handles board preset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	Camera         *engine.Camera
	CreatedAt      time.Time
	LastAccessedAt time.Time // owned by the SessionManager; read it through LastAccessed
}
