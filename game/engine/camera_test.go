package engine

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func nearly(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCellAt(t *testing.T) {
	layout := Layout{TileSize: 48, OriginX: 100, OriginY: 50}

	tests := []struct {
		name     string
		p        Point
		expected Position
		ok       bool
	}{
		{"first cell origin", Point{X: 100, Y: 50}, Position{Row: 0, Col: 0}, true},
		{"first cell far corner", Point{X: 147.9, Y: 97.9}, Position{Row: 0, Col: 0}, true},
		{"shared edge belongs to next cell", Point{X: 148, Y: 50}, Position{Row: 0, Col: 1}, true},
		{"last cell", Point{X: 100 + 4*48 - 1, Y: 50 + 2*48 - 1}, Position{Row: 1, Col: 3}, true},
		{"right of board", Point{X: 100 + 4*48, Y: 60}, Position{}, false},
		{"below board", Point{X: 110, Y: 50 + 2*48}, Position{}, false},
		{"left of board", Point{X: 99.5, Y: 60}, Position{}, false},
		{"above board", Point{X: 110, Y: 49.5}, Position{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := layout.CellAt(test.p, 2, 4)
			if ok != test.ok || got != test.expected {
				t.Errorf("CellAt(%v) = %v, %t; want %v, %t", test.p, got, ok, test.expected, test.ok)
			}
		})
	}

	t.Run("zero tile size", func(t *testing.T) {
		if _, ok := (Layout{}).CellAt(Point{}, 2, 2); ok {
			t.Error("Expected no cell for a degenerate layout")
		}
	})
}

func TestCellRectMatchesCellAt(t *testing.T) {
	layout := Layout{TileSize: 32, OriginX: 7, OriginY: 11}

	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			rect := layout.CellRect(r, c)
			pos, ok := layout.CellAt(Point{X: rect.X, Y: rect.Y}, 3, 5)
			if !ok || pos != (Position{Row: r, Col: c}) {
				t.Errorf("Top-left of cell (%d,%d) mapped to %v", r, c, pos)
			}
			if !rect.Contains(Point{X: rect.X + rect.W/2, Y: rect.Y + rect.H/2}) {
				t.Errorf("Cell (%d,%d) rect does not contain its center", r, c)
			}
		}
	}
}

func TestCenteredLayout(t *testing.T) {
	layout := CenteredLayout(8, 8, 48, 800, 600)

	if layout.OriginX != 208 || layout.OriginY != 108 {
		t.Errorf("Expected origin (208, 108), got (%v, %v)", layout.OriginX, layout.OriginY)
	}

	bounds := layout.Bounds(8, 8)
	if bounds.W != 384 || bounds.H != 384 {
		t.Errorf("Expected 384x384 bounds, got %vx%v", bounds.W, bounds.H)
	}
}

func TestCamera_RoundTrip(t *testing.T) {
	cam := &Camera{X: 35, Y: -12, Zoom: 1.7}
	points := []Point{{X: 0, Y: 0}, {X: 123.5, Y: 77}, {X: -40, Y: 900}}

	for _, p := range points {
		back := cam.ScreenToWorld(cam.WorldToScreen(p))
		if !nearly(back.X, p.X) || !nearly(back.Y, p.Y) {
			t.Errorf("Round trip of %v gave %v", p, back)
		}
	}
}

func TestCamera_Apply(t *testing.T) {
	cam := &Camera{X: 10, Y: 20, Zoom: 2}
	got := cam.Apply(Rect{X: 30, Y: 40, W: 48, H: 48})
	want := Rect{X: 40, Y: 40, W: 96, H: 96}
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestCamera_ZoomAt(t *testing.T) {
	t.Run("keeps anchor fixed", func(t *testing.T) {
		cam := &Camera{X: 15, Y: 25, Zoom: 1.2}
		anchor := Point{X: 300, Y: 200}
		before := cam.ScreenToWorld(anchor)

		cam.ZoomAt(3, anchor)

		after := cam.ScreenToWorld(anchor)
		if !nearly(before.X, after.X) || !nearly(before.Y, after.Y) {
			t.Errorf("World point under anchor moved from %v to %v", before, after)
		}
		if !nearly(cam.Zoom, 1.2*math.Pow(ZoomStepFactor, 3)) {
			t.Errorf("Unexpected zoom %v", cam.Zoom)
		}
	})

	t.Run("clamps to max", func(t *testing.T) {
		cam := NewCamera()
		cam.ZoomAt(100, Point{})
		if cam.Zoom != MaxZoom {
			t.Errorf("Expected zoom %v, got %v", MaxZoom, cam.Zoom)
		}
	})

	t.Run("clamps to min", func(t *testing.T) {
		cam := NewCamera()
		cam.ZoomAt(-100, Point{X: 50, Y: 50})
		if cam.Zoom != MinZoom {
			t.Errorf("Expected zoom %v, got %v", MinZoom, cam.Zoom)
		}
	})

	t.Run("reset", func(t *testing.T) {
		cam := &Camera{X: 3, Y: 4, Zoom: 2}
		cam.Reset()
		if *cam != *NewCamera() {
			t.Errorf("Expected default camera, got %+v", *cam)
		}
	})
}

func TestCamera_Pan(t *testing.T) {
	cam := &Camera{Zoom: 2}
	grabbed := cam.ScreenToWorld(Point{X: 100, Y: 100})

	cam.Pan(Point{X: 100, Y: 100}, Point{X: 160, Y: 80})

	if !nearly(cam.X, -30) || !nearly(cam.Y, 10) {
		t.Errorf("Expected offset (-30, 10), got (%v, %v)", cam.X, cam.Y)
	}

	// The world point grabbed at the start sits under the cursor at the end
	now := cam.WorldToScreen(grabbed)
	if !nearly(now.X, 160) || !nearly(now.Y, 80) {
		t.Errorf("Grabbed point ended at %v", now)
	}
}

func TestCamera_Finite(t *testing.T) {
	tests := []struct {
		name   string
		camera Camera
		want   bool
	}{
		{"default", *NewCamera(), true},
		{"infinite offset", Camera{X: math.Inf(1), Zoom: 1}, false},
		{"nan offset", Camera{Y: math.NaN(), Zoom: 1}, false},
		{"infinite zoom", Camera{Zoom: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.camera.Finite(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if (Point{X: math.Inf(-1)}).Finite() {
		t.Error("Expected infinite point to be rejected")
	}
	if !(Point{X: 1e308, Y: -1e308}).Finite() {
		t.Error("Expected large finite point to be accepted")
	}
}

func TestCamera_ClickThroughZoom(t *testing.T) {
	b := mustLayout(t,
		"*.",
		"..",
	)
	cam := &Camera{X: 0, Y: 0, Zoom: 2}

	// Screen (150, 150) is world (75, 75): cell (1,1) with 48px tiles
	world := cam.ScreenToWorld(Point{X: 150, Y: 150})
	changed := b.DispatchClick(world, Primary)
	if len(changed) != 1 || changed[0] != (Position{Row: 1, Col: 1}) {
		t.Errorf("Expected (1,1) revealed, got %v", changed)
	}
}
