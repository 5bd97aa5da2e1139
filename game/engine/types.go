package engine

import "errors"

// Mine is the cell value marking a mine. Any other value is a neighbor count in 0..8.
const Mine = -1

const (
	// Validation constants
	MaxDimension    = 100
	DefaultTileSize = 48
	MaxHistoryPage  = 100
)

// ErrInvalidConfiguration is returned when board dimensions or mine count are out of range.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Button identifies the input button of a click
type Button int

const (
	Primary Button = iota + 1
	Secondary
)

// String returns the wire name of the button
func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// ParseButton converts a wire name ("primary"/"left", "secondary"/"right") into a Button
func ParseButton(name string) (Button, bool) {
	switch name {
	case "primary", "left", "1":
		return Primary, true
	case "secondary", "right", "3":
		return Secondary, true
	default:
		return 0, false
	}
}

// Cell is a single tile of the board
type Cell struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Value    int  `json:"value"`
	Revealed bool `json:"revealed"`
	Flagged  bool `json:"flagged"`
}

// IsMine reports whether the cell holds a mine
func (c Cell) IsMine() bool {
	return c.Value == Mine
}

// Position identifies a cell by row and column
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Point is a coordinate in world or screen space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Finite reports whether both coordinates are finite numbers
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Rect is an axis-aligned rectangle in world or screen space
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Cell view states
const (
	StateHidden   = "hidden"
	StateFlagged  = "flagged"
	StateRevealed = "revealed"
)

// CellView is what a renderer or remote client may see of a cell.
// Count and IsMine are only filled for revealed cells.
type CellView struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	State  string `json:"state"`
	Count  int    `json:"count"`
	IsMine bool   `json:"is_mine"`
}

// GameState represents a snapshot of one game
type GameState struct {
	Grid         [][]CellView `json:"grid"`
	Height       int          `json:"height"`
	Width        int          `json:"width"`
	MineCount    int          `json:"mine_count"`
	FlagsPlaced  int          `json:"flags_placed"`
	MinesLeft    int          `json:"mines_left"`
	SafeRevealed int          `json:"safe_revealed"`
	SafeTotal    int          `json:"safe_total"`
	GameOver     bool         `json:"game_over"`
	Win          bool         `json:"win"`
	Message      string       `json:"message"`
	ConfigName   string       `json:"config_name"`
	Seed         int64        `json:"seed"`

	ActionHistory []ActionHistoryEntry `json:"action_history"`
	TotalActions  int                  `json:"total_actions"`

	// CurrentActions covers only the game since the last reset; ActionHistory is cumulative.
	CurrentActions      []ActionHistoryEntry `json:"current_actions"`
	CurrentActionsCount int                  `json:"current_actions_count"`
}

// Action names recorded in history
const (
	ActionReveal = "reveal"
	ActionFlag   = "flag"
	ActionChord  = "chord"
	ActionClick  = "click"
)

// ActionHistoryEntry represents a single player action
type ActionHistoryEntry struct {
	Action       string   `json:"action"`
	Position     Position `json:"position"`
	Button       string   `json:"button,omitempty"`
	Changed      int      `json:"changed"`
	Result       string   `json:"result"`
	Timestamp    int64    `json:"timestamp"`
	ActionNumber int      `json:"action_number"`
}

// Action results recorded in history
const (
	ResultNoChange = "no_change"
	ResultChanged  = "changed"
	ResultGameOver = "game_over"
	ResultVictory  = "victory"
)

// CellDescription is a detailed, player-safe description of one cell
type CellDescription struct {
	Position      Position `json:"position"`
	State         string   `json:"state"`
	Count         int      `json:"count"`
	IsMine        bool     `json:"is_mine"`
	FlaggedAround int      `json:"flagged_around"`
	HiddenAround  int      `json:"hidden_around"`
	Chordable     bool     `json:"chordable"`
	WorldRect     Rect     `json:"world_rect"`
}
