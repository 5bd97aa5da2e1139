package engine

import (
	"fmt"
	"math/rand"
)

// Board owns the cell grid of one game and enforces the reveal, flag and chord rules.
// Once GameOver or Win is set the board is frozen: mutating calls become no-ops.
//
// A Board is not safe for concurrent use.
type Board struct {
	height    int
	width     int
	mineCount int
	cells     [][]Cell
	layout    Layout

	gameOver     bool
	win          bool
	safeRevealed int
}

// NewBoard generates a board with mineCount mines placed uniformly at random by rng
func NewBoard(height, width, mineCount int, rng *rand.Rand) (*Board, error) {
	values, err := GenerateValues(height, width, mineCount, rng)
	if err != nil {
		return nil, err
	}
	return newBoard(values, mineCount), nil
}

// NewBoardFromLayout builds a board from rows of '*' (mine) and '.' (safe).
//
//	b, _ := NewBoardFromLayout([]string{
//		"...",
//		".*.",
//		"...",
//	})
func NewBoardFromLayout(layout []string) (*Board, error) {
	values, mines, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return newBoard(values, mines), nil
}

func newBoard(values [][]int, mineCount int) *Board {
	height := len(values)
	width := len(values[0])

	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
		for c := range cells[r] {
			cells[r][c] = Cell{Row: r, Col: c, Value: values[r][c]}
		}
	}

	return &Board{
		height:    height,
		width:     width,
		mineCount: mineCount,
		cells:     cells,
		layout:    DefaultLayout(),
	}
}

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// MineCount returns the number of mines on the board
func (b *Board) MineCount() int { return b.mineCount }

// GameOver reports whether a mine has been revealed
func (b *Board) GameOver() bool { return b.gameOver }

// Win reports whether every safe cell has been revealed
func (b *Board) Win() bool { return b.win }

// Terminal reports whether the board is frozen
func (b *Board) Terminal() bool { return b.gameOver || b.win }

// SafeRevealed returns how many non-mine cells are revealed
func (b *Board) SafeRevealed() int { return b.safeRevealed }

// SafeTotal returns how many non-mine cells exist
func (b *Board) SafeTotal() int { return b.height*b.width - b.mineCount }

// Layout returns the world geometry of the board
func (b *Board) Layout() Layout { return b.layout }

// SetLayout replaces the world geometry used by DispatchClick
func (b *Board) SetLayout(l Layout) { b.layout = l }

// InBounds reports whether (row, col) lies on the board
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// Cell returns a copy of the cell at (row, col)
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row][col], true
}

// Cells returns a copy of the whole grid
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.height)
	for r := range b.cells {
		out[r] = make([]Cell, b.width)
		copy(out[r], b.cells[r])
	}
	return out
}

// Neighbors returns the in-bounds 8-connected neighbors of (row, col)
func (b *Board) Neighbors(row, col int) []Position {
	neighbors := make([]Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nr, nc := row+off.dr, col+off.dc
		if b.InBounds(nr, nc) {
			neighbors = append(neighbors, Position{Row: nr, Col: nc})
		}
	}
	return neighbors
}

// FlagCount returns the number of flagged cells
func (b *Board) FlagCount() int {
	flags := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Flagged {
				flags++
			}
		}
	}
	return flags
}

// Reveal opens the cell at (row, col) and returns every cell it revealed.
// Revealing a mine ends the game and discloses all mines; revealing a zero
// floods its connected zero region.
func (b *Board) Reveal(row, col int) []Position {
	if b.Terminal() || !b.InBounds(row, col) {
		return nil
	}

	cell := &b.cells[row][col]
	if cell.Flagged || cell.Revealed {
		return nil
	}

	b.open(cell)
	changed := []Position{{Row: row, Col: col}}

	if cell.Value == Mine {
		b.gameOver = true
		return append(changed, b.RevealAllMines()...)
	}

	if cell.Value == 0 {
		changed = append(changed, b.flood(row, col)...)
	}

	b.checkWin()
	return changed
}

// flood reveals the zero region around an already revealed zero cell at origin.
// A cell may be pushed more than once before it is popped; popping a revealed
// or flagged cell is skipped without expanding it.
func (b *Board) flood(row, col int) []Position {
	var opened []Position
	origin := Position{Row: row, Col: col}
	stack := []Position{origin}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := &b.cells[cur.Row][cur.Col]

		if cur != origin {
			if cell.Revealed || cell.Flagged {
				continue
			}
			b.open(cell)
			opened = append(opened, cur)
		}

		if cell.Value != 0 {
			continue
		}

		for _, n := range b.Neighbors(cur.Row, cur.Col) {
			neighbor := b.cells[n.Row][n.Col]
			if !neighbor.Revealed && !neighbor.Flagged {
				stack = append(stack, n)
			}
		}
	}

	return opened
}

// Chord reveals every unflagged hidden neighbor of a revealed number cell whose
// flagged neighbor count equals its value. Otherwise it does nothing.
func (b *Board) Chord(row, col int) []Position {
	if b.Terminal() || !b.InBounds(row, col) {
		return nil
	}

	cell := b.cells[row][col]
	if !cell.Revealed || cell.Value <= 0 {
		return nil
	}

	flags := 0
	var targets []Position
	for _, n := range b.Neighbors(row, col) {
		neighbor := b.cells[n.Row][n.Col]
		if neighbor.Flagged {
			flags++
		} else if !neighbor.Revealed {
			targets = append(targets, n)
		}
	}

	if flags != cell.Value {
		return nil
	}

	var changed []Position
	for _, t := range targets {
		if b.Terminal() {
			break
		}
		changed = append(changed, b.Reveal(t.Row, t.Col)...)
	}
	return changed
}

// ToggleFlag flips the flag of a hidden cell and reports whether anything changed
func (b *Board) ToggleFlag(row, col int) bool {
	if b.Terminal() || !b.InBounds(row, col) {
		return false
	}

	cell := &b.cells[row][col]
	if cell.Revealed {
		return false
	}

	cell.Flagged = !cell.Flagged
	return true
}

// DispatchClick maps a world point to a cell and applies the button:
// primary reveals then chords, secondary toggles the flag.
func (b *Board) DispatchClick(p Point, button Button) []Position {
	if b.Terminal() {
		return nil
	}

	pos, ok := b.layout.CellAt(p, b.height, b.width)
	if !ok {
		return nil
	}

	switch button {
	case Primary:
		changed := b.Reveal(pos.Row, pos.Col)
		if !b.Terminal() {
			changed = append(changed, b.Chord(pos.Row, pos.Col)...)
		}
		return changed
	case Secondary:
		if b.ToggleFlag(pos.Row, pos.Col) {
			return []Position{pos}
		}
	}
	return nil
}

// RevealAllMines discloses every mine and returns the cells it newly revealed.
// It never changes the game outcome.
func (b *Board) RevealAllMines() []Position {
	var revealed []Position
	for r := range b.cells {
		for c := range b.cells[r] {
			cell := &b.cells[r][c]
			if cell.Value == Mine && !cell.Revealed {
				cell.Revealed = true
				revealed = append(revealed, Position{Row: r, Col: c})
			}
		}
	}
	return revealed
}

// open marks a cell revealed, counting it once if it is safe
func (b *Board) open(cell *Cell) {
	cell.Revealed = true
	if cell.Value != Mine {
		b.safeRevealed++
	}
}

func (b *Board) checkWin() {
	if !b.gameOver && b.safeRevealed == b.SafeTotal() {
		b.win = true
	}
}

// View returns the player-visible grid
func (b *Board) View() [][]CellView {
	view := make([][]CellView, b.height)
	for r, row := range b.cells {
		view[r] = make([]CellView, b.width)
		for c, cell := range row {
			view[r][c] = cellView(cell)
		}
	}
	return view
}

func cellView(cell Cell) CellView {
	v := CellView{Row: cell.Row, Col: cell.Col}
	switch {
	case cell.Revealed:
		v.State = StateRevealed
		v.IsMine = cell.Value == Mine
		if !v.IsMine {
			v.Count = cell.Value
		}
	case cell.Flagged:
		v.State = StateFlagged
	default:
		v.State = StateHidden
	}
	return v
}

// String renders the board for debugging: '#' hidden, 'F' flagged, '*' mine, digits for counts
func (b *Board) String() string {
	out := make([]byte, 0, b.height*(b.width+1))
	for _, row := range b.cells {
		for _, cell := range row {
			switch {
			case cell.Revealed && cell.Value == Mine:
				out = append(out, '*')
			case cell.Revealed:
				out = append(out, byte('0'+cell.Value))
			case cell.Flagged:
				out = append(out, 'F')
			default:
				out = append(out, '#')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

// GoString summarizes the board dimensions and status
func (b *Board) GoString() string {
	return fmt.Sprintf("Board{%dx%d mines=%d revealed=%d/%d over=%t win=%t}",
		b.height, b.width, b.mineCount, b.safeRevealed, b.SafeTotal(), b.gameOver, b.win)
}
