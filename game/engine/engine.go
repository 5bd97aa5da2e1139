package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	Reset() *GameState
	IsGameOver() bool
	IsVictory() bool
	GetMinesLeft() int

	// Player input
	Reveal(row, col int) []Position
	ToggleFlag(row, col int) bool
	Chord(row, col int) []Position
	Click(p Point, button Button) []Position

	// Board access
	GetBoard() *Board
	DescribeCell(row, col int) (CellDescription, bool)

	// Configuration
	GetConfig() *GameConfig

	// History
	GetActionHistory() []ActionHistoryEntry
	GetLastAction() *ActionHistoryEntry
}

// GameEngine implements the Engine interface on top of a Board
type GameEngine struct {
	config  *GameConfig
	board   *Board
	seed    int64
	message string

	history        []ActionHistoryEntry
	totalActions   int
	currentActions []ActionHistoryEntry
}

// NewEngine creates a new game engine with the provided configuration and a random seed
func NewEngine(config *GameConfig) (*GameEngine, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewEngineWithSeed(config, seed)
}

// NewEngineWithSeed creates a game engine whose mine placement is fixed by seed
func NewEngineWithSeed(config *GameConfig, seed int64) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	board, err := boardFromConfig(config, seed)
	if err != nil {
		return nil, err
	}

	return &GameEngine{
		config:         config,
		board:          board,
		seed:           seed,
		message:        config.Messages.Welcome,
		history:        []ActionHistoryEntry{},
		currentActions: []ActionHistoryEntry{},
	}, nil
}

// NewEngineWithDefaults creates a new game engine with the easy preset
func NewEngineWithDefaults() *GameEngine {
	config, _ := PresetByName("easy")
	engine, err := NewEngine(config)
	if err != nil {
		panic(fmt.Sprintf("built-in preset is invalid: %v", err))
	}
	return engine
}

func boardFromConfig(config *GameConfig, seed int64) (*Board, error) {
	var board *Board
	var err error
	if len(config.Layout) > 0 {
		board, err = NewBoardFromLayout(config.Layout)
	} else {
		board, err = NewBoard(config.Height, config.Width, config.Mines, rand.New(rand.NewSource(seed)))
	}
	if err != nil {
		return nil, err
	}

	board.SetLayout(Layout{TileSize: config.EffectiveTileSize()})
	return board, nil
}

// GetState returns a snapshot of the current game
func (e *GameEngine) GetState() *GameState {
	b := e.board
	flags := b.FlagCount()
	return &GameState{
		Grid:                b.View(),
		Height:              b.Height(),
		Width:               b.Width(),
		MineCount:           b.MineCount(),
		FlagsPlaced:         flags,
		MinesLeft:           b.MineCount() - flags,
		SafeRevealed:        b.SafeRevealed(),
		SafeTotal:           b.SafeTotal(),
		GameOver:            b.GameOver(),
		Win:                 b.Win(),
		Message:             e.message,
		ConfigName:          e.config.Name,
		Seed:                e.seed,
		ActionHistory:       e.history,
		TotalActions:        e.totalActions,
		CurrentActions:      e.currentActions,
		CurrentActionsCount: len(e.currentActions),
	}
}

// Reset starts a new game with the same configuration and a fresh seed.
// The cumulative action history survives; the current segment is cleared.
func (e *GameEngine) Reset() *GameState {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}

	board, err := boardFromConfig(e.config, seed)
	if err != nil {
		log.Printf("Reset of %q failed, keeping the current board: %v", e.config.Name, err)
		return e.GetState()
	}

	e.board = board
	e.seed = seed
	e.message = e.config.Messages.Welcome
	e.currentActions = []ActionHistoryEntry{}
	return e.GetState()
}

// IsGameOver returns whether a mine was revealed
func (e *GameEngine) IsGameOver() bool {
	return e.board.GameOver()
}

// IsVictory returns whether the player has won
func (e *GameEngine) IsVictory() bool {
	return e.board.Win()
}

// GetMinesLeft returns mine count minus placed flags
func (e *GameEngine) GetMinesLeft() int {
	return e.board.MineCount() - e.board.FlagCount()
}

// GetSeed returns the seed of the current board
func (e *GameEngine) GetSeed() int64 {
	return e.seed
}

// Reveal opens a cell
func (e *GameEngine) Reveal(row, col int) []Position {
	changed := e.board.Reveal(row, col)
	e.record(ActionReveal, Position{Row: row, Col: col}, "", len(changed))
	return changed
}

// ToggleFlag flags or unflags a hidden cell
func (e *GameEngine) ToggleFlag(row, col int) bool {
	toggled := e.board.ToggleFlag(row, col)
	changed := 0
	if toggled {
		changed = 1
	}
	e.record(ActionFlag, Position{Row: row, Col: col}, "", changed)
	return toggled
}

// Chord reveals the neighbors of a satisfied number cell
func (e *GameEngine) Chord(row, col int) []Position {
	changed := e.board.Chord(row, col)
	e.record(ActionChord, Position{Row: row, Col: col}, "", len(changed))
	return changed
}

// Click dispatches a world-space click to the board
func (e *GameEngine) Click(p Point, button Button) []Position {
	pos, ok := e.board.Layout().CellAt(p, e.board.Height(), e.board.Width())
	if !ok {
		pos = Position{Row: -1, Col: -1}
	}

	changed := e.board.DispatchClick(p, button)
	e.record(ActionClick, pos, button.String(), len(changed))
	return changed
}

// RevealAllMines discloses every mine for an end-of-game display
func (e *GameEngine) RevealAllMines() []Position {
	return e.board.RevealAllMines()
}

// GetBoard returns the board for read access
func (e *GameEngine) GetBoard() *Board {
	return e.board
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetActionHistory returns the complete action history
func (e *GameEngine) GetActionHistory() []ActionHistoryEntry {
	return e.history
}

// GetLastAction returns the last action taken, or nil if none
func (e *GameEngine) GetLastAction() *ActionHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	return &e.history[len(e.history)-1]
}

// DescribeCell returns a player-safe description of one cell
func (e *GameEngine) DescribeCell(row, col int) (CellDescription, bool) {
	cell, ok := e.board.Cell(row, col)
	if !ok {
		return CellDescription{}, false
	}

	view := cellView(cell)
	desc := CellDescription{
		Position:  Position{Row: row, Col: col},
		State:     view.State,
		Count:     view.Count,
		IsMine:    view.IsMine,
		WorldRect: e.board.Layout().CellRect(row, col),
	}

	for _, n := range e.board.Neighbors(row, col) {
		neighbor, _ := e.board.Cell(n.Row, n.Col)
		switch {
		case neighbor.Flagged && !neighbor.Revealed:
			desc.FlaggedAround++
		case !neighbor.Revealed:
			desc.HiddenAround++
		}
	}
	desc.Chordable = !e.board.Terminal() && cell.Revealed && cell.Value > 0 &&
		desc.FlaggedAround == cell.Value && desc.HiddenAround > 0

	return desc, true
}

// record appends an action to the history and refreshes the status message
func (e *GameEngine) record(action string, pos Position, button string, changed int) {
	result := ResultChanged
	switch {
	case e.board.GameOver():
		result = ResultGameOver
		e.message = e.config.Messages.Defeat
	case e.board.Win():
		result = ResultVictory
		e.message = e.config.Messages.Victory
	case changed == 0:
		result = ResultNoChange
		if e.config.Messages.NoChange != "" {
			e.message = e.config.Messages.NoChange
		}
	default:
		if e.config.Messages.Status != "" {
			e.message = fmt.Sprintf(e.config.Messages.Status, e.board.SafeRevealed(), e.board.SafeTotal())
		}
	}
	if changed == 0 && e.board.Terminal() {
		result = ResultNoChange
	}

	entry := ActionHistoryEntry{
		Action:       action,
		Position:     pos,
		Button:       button,
		Changed:      changed,
		Result:       result,
		Timestamp:    time.Now().Unix(),
		ActionNumber: e.totalActions + 1,
	}
	e.history = append(e.history, entry)
	e.totalActions++
	e.currentActions = append(e.currentActions, entry)
}
