package engine

import "math"

// Layout places the board in world space: tile (row, col) covers
// [OriginX + col*TileSize, OriginX + (col+1)*TileSize) horizontally.
type Layout struct {
	TileSize float64 `json:"tile_size"`
	OriginX  float64 `json:"origin_x"`
	OriginY  float64 `json:"origin_y"`
}

// DefaultLayout returns a layout with the default tile size anchored at the world origin
func DefaultLayout() Layout {
	return Layout{TileSize: DefaultTileSize}
}

// CenteredLayout centers a height x width board inside a screen of the given size
func CenteredLayout(height, width int, tileSize, screenW, screenH float64) Layout {
	return Layout{
		TileSize: tileSize,
		OriginX:  math.Floor((screenW - float64(width)*tileSize) / 2),
		OriginY:  math.Floor((screenH - float64(height)*tileSize) / 2),
	}
}

// CellRect returns the world rectangle covered by a cell
func (l Layout) CellRect(row, col int) Rect {
	return Rect{
		X: l.OriginX + float64(col)*l.TileSize,
		Y: l.OriginY + float64(row)*l.TileSize,
		W: l.TileSize,
		H: l.TileSize,
	}
}

// Bounds returns the world rectangle covered by a height x width board
func (l Layout) Bounds(height, width int) Rect {
	return Rect{
		X: l.OriginX,
		Y: l.OriginY,
		W: float64(width) * l.TileSize,
		H: float64(height) * l.TileSize,
	}
}

// CellAt returns the cell under world point p, or false when p is off the board
func (l Layout) CellAt(p Point, height, width int) (Position, bool) {
	if l.TileSize <= 0 {
		return Position{}, false
	}

	col := int(math.Floor((p.X - l.OriginX) / l.TileSize))
	row := int(math.Floor((p.Y - l.OriginY) / l.TileSize))
	if row < 0 || row >= height || col < 0 || col >= width {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}
