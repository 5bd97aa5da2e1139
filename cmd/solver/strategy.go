package main

import (
	"github.com/wricardo/mcp-training/minesweeper/game/engine"
)

// Move is one action chosen by the strategy
type Move struct {
	Action string // engine.ActionReveal, ActionFlag or ActionChord
	Pos    engine.Position
	Guess  bool // true when no safe move could be deduced
}

// constraint is a revealed number and the hidden cells it still constrains
type constraint struct {
	pos       engine.Position
	hidden    []engine.Position
	remaining int // mines left among hidden
}

// Strategy deduces moves from the player view only. It never sees mine
// positions, so a reveal it did not deduce is marked as a guess.
type Strategy struct {
	guesses int
}

// NewStrategy creates a strategy
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Guesses returns how many moves since the last Reset were guesses
func (s *Strategy) Guesses() int {
	return s.guesses
}

// Reset clears per-game counters
func (s *Strategy) Reset() {
	s.guesses = 0
}

// NextMove picks the next action, or returns false when the game is over or
// no unflagged hidden cell is left.
//
// Order: chord a satisfied number, flag a number's forced mines, then the
// pairwise subset rule (safe cells before mines), then the least risky guess.
func (s *Strategy) NextMove(state *engine.GameState) (Move, bool) {
	if state == nil || state.GameOver || state.Win {
		return Move{}, false
	}

	constraints := collectConstraints(state)

	for _, c := range constraints {
		if c.remaining == 0 && len(c.hidden) > 0 {
			return Move{Action: engine.ActionChord, Pos: c.pos}, true
		}
	}

	for _, c := range constraints {
		if c.remaining > 0 && c.remaining == len(c.hidden) {
			return Move{Action: engine.ActionFlag, Pos: c.hidden[0]}, true
		}
	}

	if move, ok := subsetMove(constraints); ok {
		return move, true
	}

	pos, ok := leastRiskyCell(state, constraints)
	if !ok {
		return Move{}, false
	}
	s.guesses++
	return Move{Action: engine.ActionReveal, Pos: pos, Guess: true}, true
}

func neighbors(state *engine.GameState, row, col int) []engine.Position {
	var out []engine.Position
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < state.Height && c >= 0 && c < state.Width {
				out = append(out, engine.Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// collectConstraints lists every revealed number that still borders a hidden cell
func collectConstraints(state *engine.GameState) []constraint {
	var out []constraint
	for r, row := range state.Grid {
		for c, cell := range row {
			if cell.State != engine.StateRevealed || cell.IsMine || cell.Count == 0 {
				continue
			}

			con := constraint{pos: engine.Position{Row: r, Col: c}, remaining: cell.Count}
			for _, n := range neighbors(state, r, c) {
				switch state.Grid[n.Row][n.Col].State {
				case engine.StateFlagged:
					con.remaining--
				case engine.StateHidden:
					con.hidden = append(con.hidden, n)
				}
			}
			if len(con.hidden) > 0 {
				out = append(out, con)
			}
		}
	}
	return out
}

// subsetMove applies the pairwise rule: when a's hidden cells are a strict
// subset of b's, the cells only b sees hold exactly b.remaining-a.remaining mines.
func subsetMove(constraints []constraint) (Move, bool) {
	var flag *Move
	for i := range constraints {
		for j := range constraints {
			a, b := constraints[i], constraints[j]
			if i == j || len(a.hidden) >= len(b.hidden) {
				continue
			}
			diff, ok := difference(b.hidden, a.hidden)
			if !ok {
				continue
			}

			mines := b.remaining - a.remaining
			switch {
			case mines == 0:
				return Move{Action: engine.ActionReveal, Pos: diff[0]}, true
			case mines == len(diff) && flag == nil:
				flag = &Move{Action: engine.ActionFlag, Pos: diff[0]}
			}
		}
	}
	if flag != nil {
		return *flag, true
	}
	return Move{}, false
}

// difference returns b minus a, and false when a is not contained in b
func difference(b, a []engine.Position) ([]engine.Position, bool) {
	inA := make(map[engine.Position]bool, len(a))
	for _, p := range a {
		inA[p] = true
	}

	var diff []engine.Position
	matched := 0
	for _, p := range b {
		if inA[p] {
			matched++
		} else {
			diff = append(diff, p)
		}
	}
	return diff, matched == len(a)
}

// leastRiskyCell estimates each hidden cell's mine chance: the worst ratio of
// any adjacent number, or the global density for cells no number touches.
// The board centre is the first move on an untouched board.
func leastRiskyCell(state *engine.GameState, constraints []constraint) (engine.Position, bool) {
	risk := make(map[engine.Position]float64)
	for _, c := range constraints {
		p := float64(c.remaining) / float64(len(c.hidden))
		for _, h := range c.hidden {
			if cur, ok := risk[h]; !ok || p > cur {
				risk[h] = p
			}
		}
	}

	unknown := 0
	for _, row := range state.Grid {
		for _, cell := range row {
			if cell.State == engine.StateHidden {
				unknown++
			}
		}
	}
	if unknown == 0 {
		return engine.Position{}, false
	}
	density := float64(state.MinesLeft) / float64(unknown)

	if state.SafeRevealed == 0 {
		center := engine.Position{Row: state.Height / 2, Col: state.Width / 2}
		if state.Grid[center.Row][center.Col].State == engine.StateHidden {
			return center, true
		}
	}

	best := engine.Position{}
	bestRisk := 2.0
	for r, row := range state.Grid {
		for c, cell := range row {
			if cell.State != engine.StateHidden {
				continue
			}
			pos := engine.Position{Row: r, Col: c}
			p, onFrontier := risk[pos]
			if !onFrontier {
				p = density
			}
			if p < bestRisk {
				best, bestRisk = pos, p
			}
		}
	}
	return best, true
}
