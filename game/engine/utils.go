package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed for mine placement using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// CountMines counts the mine cells in a grid
func CountMines(cells [][]Cell) int {
	count := 0
	for _, row := range cells {
		for _, cell := range row {
			if cell.Value == Mine {
				count++
			}
		}
	}
	return count
}

// CountViewState counts the cells of a view grid in the given state
func CountViewState(grid [][]CellView, state string) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell.State == state {
				count++
			}
		}
	}
	return count
}

// ZeroFraction returns the share of safe cells whose value is zero
func ZeroFraction(values [][]int) float64 {
	zeros, safe := 0, 0
	for _, row := range values {
		for _, v := range row {
			if v == Mine {
				continue
			}
			safe++
			if v == 0 {
				zeros++
			}
		}
	}
	if safe == 0 {
		return 0
	}
	return float64(zeros) / float64(safe)
}

// ViewChar maps a cell view to a single display character:
// '#' hidden, 'F' flagged, '*' mine, '.' zero, digits for counts
func ViewChar(v CellView) string {
	switch v.State {
	case StateFlagged:
		return "F"
	case StateRevealed:
		if v.IsMine {
			return "*"
		}
		if v.Count == 0 {
			return "."
		}
		return fmt.Sprintf("%d", v.Count)
	default:
		return "#"
	}
}

// RenderGrid renders a view grid as text rows
func RenderGrid(grid [][]CellView) []string {
	rows := make([]string, len(grid))
	for r, row := range grid {
		line := make([]byte, 0, len(row))
		for _, cell := range row {
			line = append(line, ViewChar(cell)...)
		}
		rows[r] = string(line)
	}
	return rows
}

// CountOpenings counts the 8-connected regions of zero cells. Revealing any
// cell of an opening clears the whole region and its border.
func CountOpenings(values [][]int) int {
	openings, _ := openingMap(values)
	return openings
}

// ClickValue returns the minimum number of reveals that clears a board
// without flags: one per opening plus one per numbered cell no opening borders.
func ClickValue(values [][]int) int {
	openings, covered := openingMap(values)
	clicks := openings
	for r, row := range values {
		for c, v := range row {
			if v > 0 && !covered[r][c] {
				clicks++
			}
		}
	}
	return clicks
}

// openingMap flood-fills the zero regions and marks every cell they reveal
func openingMap(values [][]int) (int, [][]bool) {
	height := len(values)
	covered := make([][]bool, height)
	for r := range covered {
		covered[r] = make([]bool, len(values[r]))
	}

	openings := 0
	for r := range values {
		for c := range values[r] {
			if values[r][c] != 0 || covered[r][c] {
				continue
			}
			openings++

			stack := []Position{{Row: r, Col: c}}
			covered[r][c] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, off := range neighborOffsets {
					nr, nc := cur.Row+off.dr, cur.Col+off.dc
					if nr < 0 || nr >= height || nc < 0 || nc >= len(values[nr]) || covered[nr][nc] {
						continue
					}
					if values[nr][nc] == Mine {
						continue
					}
					covered[nr][nc] = true
					if values[nr][nc] == 0 {
						stack = append(stack, Position{Row: nr, Col: nc})
					}
				}
			}
		}
	}
	return openings, covered
}
