package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// neighborOffsets lists the 8-connected neighbor offsets as (row, col) deltas
var neighborOffsets = []struct{ dr, dc int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ValidateDimensions checks 0 < height, 0 < width and 0 <= mineCount < height*width
func ValidateDimensions(height, width, mineCount int) error {
	if height <= 0 || width <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d: %w", height, width, ErrInvalidConfiguration)
	}
	if mineCount < 0 {
		return fmt.Errorf("mine count cannot be negative, got %d: %w", mineCount, ErrInvalidConfiguration)
	}
	if mineCount >= height*width {
		return fmt.Errorf("mine count %d leaves no safe cell on a %dx%d board: %w",
			mineCount, height, width, ErrInvalidConfiguration)
	}
	return nil
}

// GenerateValues produces a height x width matrix holding exactly mineCount Mine
// cells placed by a uniform shuffle; every other cell holds its neighbor mine count.
func GenerateValues(height, width, mineCount int, rng *rand.Rand) ([][]int, error) {
	if err := ValidateDimensions(height, width, mineCount); err != nil {
		return nil, err
	}

	flat := make([]int, height*width)
	for i := 0; i < mineCount; i++ {
		flat[i] = Mine
	}
	rng.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	values := make([][]int, height)
	for r := range values {
		values[r] = flat[r*width : (r+1)*width : (r+1)*width]
	}

	countNeighborMines(values)
	return values, nil
}

// ParseLayout converts rows of '*' (mine) and '.' (safe) into a value matrix
func ParseLayout(layout []string) ([][]int, int, error) {
	if len(layout) == 0 {
		return nil, 0, fmt.Errorf("layout is empty: %w", ErrInvalidConfiguration)
	}

	width := len(layout[0])
	mines := 0
	values := make([][]int, len(layout))
	for r, row := range layout {
		if len(row) != width {
			return nil, 0, fmt.Errorf("layout row %d has %d columns, expected %d: %w",
				r, len(row), width, ErrInvalidConfiguration)
		}
		values[r] = make([]int, width)
		for c, ch := range row {
			switch ch {
			case '*':
				values[r][c] = Mine
				mines++
			case '.':
			default:
				return nil, 0, fmt.Errorf("invalid layout character %q at row %d, col %d: %w",
					ch, r, c, ErrInvalidConfiguration)
			}
		}
	}

	if err := ValidateDimensions(len(layout), width, mines); err != nil {
		return nil, 0, err
	}

	countNeighborMines(values)
	return values, mines, nil
}

// countNeighborMines replaces every non-mine value with its count of mine neighbors.
// It must run once, after all mines are placed.
func countNeighborMines(values [][]int) {
	height := len(values)
	for r := 0; r < height; r++ {
		width := len(values[r])
		for c := 0; c < width; c++ {
			if values[r][c] == Mine {
				continue
			}
			count := 0
			for _, off := range neighborOffsets {
				nr, nc := r+off.dr, c+off.dc
				if nr >= 0 && nr < height && nc >= 0 && nc < width && values[nr][nc] == Mine {
					count++
				}
			}
			values[r][c] = count
		}
	}
}

// FormatValues renders a value matrix using '*' for mines and digits for counts
func FormatValues(values [][]int) string {
	var sb strings.Builder
	for _, row := range values {
		for _, v := range row {
			if v == Mine {
				sb.WriteByte('*')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
