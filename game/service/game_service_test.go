package service_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/wricardo/mcp-training/minesweeper/game/engine"
	"github.com/wricardo/mcp-training/minesweeper/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("t%03d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	eng, err := engine.NewEngineWithSeed(config, 1)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		Camera:         engine.NewCamera(),
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, service.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if session, exists := m.sessions[id]; exists {
		return session, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return service.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) (time.Time, error) {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return session.LastAccessedAt, nil
	}
	return time.Time{}, service.ErrSessionNotFound
}

func (m *MockSessionManager) LastAccessed(id string) (time.Time, error) {
	if session, exists := m.sessions[id]; exists {
		return session.LastAccessedAt, nil
	}
	return time.Time{}, service.ErrSessionNotFound
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
	saved   map[string]*engine.GameConfig
}

func testMessages() engine.Messages {
	return engine.Messages{
		Welcome:  "Welcome to test!",
		Victory:  "Cleared!",
		Defeat:   "Boom!",
		NoChange: "Nothing happened",
		Status:   "Revealed %d/%d",
	}
}

func NewMockConfigManager() *MockConfigManager {
	// One mine in the top-left corner of a 3x3 board
	testConfig := &engine.GameConfig{
		Name:        "test",
		Description: "Test configuration",
		Height:      3,
		Width:       3,
		Mines:       1,
		Layout: []string{
			"*..",
			"...",
			"...",
		},
		Messages: testMessages(),
	}

	// Two mines on a 4x4 board, leaving a cascade in the bottom right
	wideConfig := &engine.GameConfig{
		Name:        "wide",
		Description: "Wider test configuration",
		Height:      4,
		Width:       4,
		Mines:       2,
		Layout: []string{
			"*.*.",
			"....",
			"....",
			"....",
		},
		Messages: testMessages(),
	}

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"default": testConfig,
			"test":    testConfig,
			"wide":    wideConfig,
		},
		saved: make(map[string]*engine.GameConfig),
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, service.ErrConfigNotFound
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for name, config := range m.configs {
		if name == "default" {
			continue
		}
		result = append(result, &service.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			Height:      config.Height,
			Width:       config.Width,
			Mines:       config.Mines,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["default"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return err
	}
	m.saved[name] = config
	return nil
}

func newTestService(t *testing.T) (service.GameService, *MockSessionManager) {
	t.Helper()
	sessions := NewMockSessionManager()
	return service.NewGameService(sessions, NewMockConfigManager()), sessions
}

func eventTypes(events []service.GameEvent) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

// Test cases
func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name       string
		configName string
		wantConfig string
		wantErr    bool
	}{
		{"create with default config", "", "test", false},
		{"create with specific config", "wide", "wide", false},
		{"create with invalid config", "nonexistent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.CreateSession(ctx, tt.configName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, service.ErrConfigNotFound) {
					t.Errorf("Expected ErrConfigNotFound, got %v", err)
				}
				return
			}
			if session.ConfigName != tt.wantConfig {
				t.Errorf("Expected config %s, got %s", tt.wantConfig, session.ConfigName)
			}
			if session.GameState == nil || session.GameState.Message != "Welcome to test!" {
				t.Error("Expected a fresh game state")
			}
			if session.Camera.Zoom != 1 {
				t.Errorf("Expected default camera, got %+v", session.Camera)
			}
		})
	}
}

func TestGameService_Reveal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	t.Run("number cell", func(t *testing.T) {
		result, err := svc.Reveal(ctx, info.ID, 0, 1)
		if err != nil {
			t.Fatalf("Reveal() error = %v", err)
		}
		if !result.Success || len(result.Changed) != 1 {
			t.Errorf("Expected one revealed cell, got %+v", result.Changed)
		}
		if got := eventTypes(result.Events); len(got) != 1 || got[0] != service.EventReveal {
			t.Errorf("Expected reveal event, got %v", got)
		}
		if result.Action != engine.ActionReveal {
			t.Errorf("Expected reveal action, got %s", result.Action)
		}
	})

	t.Run("already revealed", func(t *testing.T) {
		result, err := svc.Reveal(ctx, info.ID, 0, 1)
		if err != nil {
			t.Fatalf("Reveal() error = %v", err)
		}
		if result.Success {
			t.Error("Expected no change")
		}
		if got := eventTypes(result.Events); len(got) != 1 || got[0] != service.EventNoChange {
			t.Errorf("Expected no_change event, got %v", got)
		}
		if result.Changed == nil {
			t.Error("Changed must be an empty slice, not nil")
		}
	})

	t.Run("flood to victory", func(t *testing.T) {
		result, err := svc.Reveal(ctx, info.ID, 2, 2)
		if err != nil {
			t.Fatalf("Reveal() error = %v", err)
		}
		got := eventTypes(result.Events)
		if len(got) != 2 || got[0] != service.EventReveal || got[1] != service.EventVictory {
			t.Errorf("Expected reveal then victory, got %v", got)
		}
		if !result.GameState.Win || result.Message != "Cleared!" {
			t.Errorf("Expected victory state, got %+v", result.GameState)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := svc.Reveal(ctx, info.ID, 3, 0)
		if !errors.Is(err, service.ErrOutOfBounds) {
			t.Errorf("Expected ErrOutOfBounds, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.Reveal(ctx, "nope", 0, 0)
		if !errors.Is(err, service.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestGameService_RevealMine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "test")

	result, err := svc.Reveal(ctx, info.ID, 0, 0)
	if err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}

	got := eventTypes(result.Events)
	if len(got) != 2 || got[1] != service.EventGameOver {
		t.Errorf("Expected reveal then game_over, got %v", got)
	}
	if result.Message != "Boom!" {
		t.Errorf("Expected defeat message, got %q", result.Message)
	}

	// Frozen board: later actions change nothing and emit no second game_over
	result, _ = svc.Reveal(ctx, info.ID, 2, 2)
	if got := eventTypes(result.Events); len(got) != 1 || got[0] != service.EventNoChange {
		t.Errorf("Expected no_change after game over, got %v", got)
	}
}

func TestGameService_FlagAndChord(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "test")

	result, err := svc.Flag(ctx, info.ID, 0, 0)
	if err != nil {
		t.Fatalf("Flag() error = %v", err)
	}
	if got := eventTypes(result.Events); got[0] != service.EventFlag {
		t.Errorf("Expected flag event, got %v", got)
	}
	if result.GameState.MinesLeft != 0 {
		t.Errorf("Expected 0 mines left, got %d", result.GameState.MinesLeft)
	}

	svc.Reveal(ctx, info.ID, 1, 1)

	result, err = svc.Chord(ctx, info.ID, 1, 1)
	if err != nil {
		t.Fatalf("Chord() error = %v", err)
	}
	got := eventTypes(result.Events)
	if len(got) != 2 || got[0] != service.EventChord || got[1] != service.EventVictory {
		t.Errorf("Expected chord then victory, got %v", got)
	}

	t.Run("unflag", func(t *testing.T) {
		info, _ := svc.CreateSession(ctx, "test")
		svc.Flag(ctx, info.ID, 2, 2)
		result, _ := svc.Flag(ctx, info.ID, 2, 2)
		if got := eventTypes(result.Events); got[0] != service.EventUnflag {
			t.Errorf("Expected unflag event, got %v", got)
		}
	})
}

func TestGameService_Click(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "wide")

	tile := float64(engine.DefaultTileSize)
	center := func(row, col int) engine.Point {
		return engine.Point{X: float64(col)*tile + tile/2, Y: float64(row)*tile + tile/2}
	}

	t.Run("primary reveals", func(t *testing.T) {
		result, err := svc.Click(ctx, info.ID, center(0, 1), engine.Primary)
		if err != nil {
			t.Fatalf("Click() error = %v", err)
		}
		if got := eventTypes(result.Events); got[0] != service.EventReveal {
			t.Errorf("Expected reveal event, got %v", got)
		}
		if len(result.Changed) != 1 {
			t.Errorf("Expected a single revealed cell, got %v", result.Changed)
		}
	})

	t.Run("secondary flags", func(t *testing.T) {
		result, _ := svc.Click(ctx, info.ID, center(0, 0), engine.Secondary)
		if got := eventTypes(result.Events); got[0] != service.EventFlag {
			t.Errorf("Expected flag event, got %v", got)
		}
		if result.Position != (engine.Position{Row: 0, Col: 0}) {
			t.Errorf("Expected (0,0), got %v", result.Position)
		}
		svc.Click(ctx, info.ID, center(0, 2), engine.Secondary)
	})

	t.Run("primary on revealed number chords", func(t *testing.T) {
		result, _ := svc.Click(ctx, info.ID, center(0, 1), engine.Primary)
		if got := eventTypes(result.Events); got[0] != service.EventChord {
			t.Errorf("Expected chord event, got %v", got)
		}
		if len(result.Changed) != 3 {
			t.Errorf("Expected 3 cells revealed by chord, got %v", result.Changed)
		}
	})

	t.Run("through zoomed camera", func(t *testing.T) {
		cam, _ := svc.Zoom(ctx, info.ID, math.Log(2)/math.Log(engine.ZoomStepFactor), engine.Point{})
		if math.Abs(cam.Zoom-2) > 1e-9 {
			t.Fatalf("Expected zoom 2, got %v", cam.Zoom)
		}

		// Screen (7*48, 7*48) is world (168, 168): cell (3,3)
		result, _ := svc.Click(ctx, info.ID, engine.Point{X: 7 * tile, Y: 7 * tile}, engine.Primary)
		if result.Position != (engine.Position{Row: 3, Col: 3}) {
			t.Errorf("Expected click at (3,3), got %v", result.Position)
		}
		// Rows 2 and 3 are zeros; the flood stops at the numbers of row 1
		if len(result.Changed) != 9 {
			t.Errorf("Expected 9 cells from the cascade, got %v", result.Changed)
		}

		// Cell (0,3) covers world (144..192, 0..48): screen (288..384, 0..96)
		result, _ = svc.Click(ctx, info.ID, engine.Point{X: 336, Y: 48}, engine.Primary)
		if !result.GameState.Win {
			t.Errorf("Expected victory, got %+v", result.GameState)
		}
	})

	t.Run("off board", func(t *testing.T) {
		result, err := svc.Click(ctx, info.ID, engine.Point{X: -10, Y: -10}, engine.Primary)
		if err != nil {
			t.Fatalf("Click() error = %v", err)
		}
		if result.Success || result.Position != (engine.Position{Row: -1, Col: -1}) {
			t.Errorf("Expected off-board no-op, got %+v", result)
		}
	})

	t.Run("invalid button", func(t *testing.T) {
		_, err := svc.Click(ctx, info.ID, center(0, 0), engine.Button(7))
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestGameService_HoverPanZoom(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "test")

	hover, err := svc.Hover(ctx, info.ID, engine.Point{X: 60, Y: 10})
	if err != nil {
		t.Fatalf("Hover() error = %v", err)
	}
	if !hover.OnBoard || hover.Cell.Position != (engine.Position{Row: 0, Col: 1}) {
		t.Errorf("Expected hover over (0,1), got %+v", hover)
	}
	if hover.Cell.State != engine.StateHidden || hover.Cell.Count != 0 {
		t.Errorf("Hover leaked hidden data: %+v", hover.Cell)
	}

	cam, err := svc.Pan(ctx, info.ID, engine.Point{X: 100, Y: 100}, engine.Point{X: 52, Y: 100})
	if err != nil {
		t.Fatalf("Pan() error = %v", err)
	}
	if cam.X != 48 || cam.Y != 0 {
		t.Errorf("Expected camera at (48,0), got %+v", cam)
	}

	// After panning one tile right the same screen point covers (0,2)
	hover, _ = svc.Hover(ctx, info.ID, engine.Point{X: 60, Y: 10})
	if hover.Cell == nil || hover.Cell.Position != (engine.Position{Row: 0, Col: 2}) {
		t.Errorf("Expected hover over (0,2), got %+v", hover)
	}

	hover, _ = svc.Hover(ctx, info.ID, engine.Point{X: 500, Y: 500})
	if hover.OnBoard || hover.Cell != nil {
		t.Errorf("Expected off-board hover, got %+v", hover)
	}

	cam, _ = svc.Zoom(ctx, info.ID, 100, engine.Point{})
	if cam.Zoom != engine.MaxZoom {
		t.Errorf("Expected zoom clamped to %v, got %v", engine.MaxZoom, cam.Zoom)
	}

	// Reset restores the camera
	svc.Reset(ctx, info.ID)
	session, _ := svc.GetSession(ctx, info.ID)
	if session.Camera != *engine.NewCamera() {
		t.Errorf("Expected camera reset, got %+v", session.Camera)
	}
}

func TestGameService_DescribeCell(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "test")

	svc.Reveal(ctx, info.ID, 1, 1)

	desc, err := svc.DescribeCell(ctx, info.ID, 1, 1)
	if err != nil {
		t.Fatalf("DescribeCell() error = %v", err)
	}
	if desc.Count != 1 || desc.HiddenAround != 8 {
		t.Errorf("Unexpected description %+v", desc)
	}

	if _, err := svc.DescribeCell(ctx, info.ID, -1, 0); !errors.Is(err, service.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestGameService_GetActionHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Five actions: flag, unflag, reveal, repeat reveal, flag
	svc.Flag(ctx, info.ID, 2, 2)
	svc.Flag(ctx, info.ID, 2, 2)
	svc.Reveal(ctx, info.ID, 0, 1)
	svc.Reveal(ctx, info.ID, 0, 1)
	svc.Flag(ctx, info.ID, 0, 0)

	tests := []struct {
		name        string
		sessionID   string
		opts        service.HistoryOptions
		wantNumbers []int
		wantPages   int
		wantNext    bool
		wantErr     bool
	}{
		{"default options", info.ID, service.HistoryOptions{}, []int{5, 4, 3, 2, 1}, 1, false, false},
		{"ascending first page", info.ID, service.HistoryOptions{Page: 1, Limit: 2, Order: "asc"}, []int{1, 2}, 3, true, false},
		{"ascending last page", info.ID, service.HistoryOptions{Page: 3, Limit: 2, Order: "asc"}, []int{5}, 3, false, false},
		{"descending second page", info.ID, service.HistoryOptions{Page: 2, Limit: 2, Order: "desc"}, []int{3, 2}, 3, true, false},
		{"page past the end", info.ID, service.HistoryOptions{Page: 9, Limit: 2}, []int{}, 3, false, false},
		{"invalid order", info.ID, service.HistoryOptions{Order: "sideways"}, nil, 0, false, true},
		{"invalid session", "nonexistent", service.HistoryOptions{}, nil, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.GetActionHistory(ctx, tt.sessionID, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetActionHistory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if result.Actions == nil {
				t.Fatal("GetActionHistory() returned nil actions slice")
			}
			numbers := make([]int, len(result.Actions))
			for i, a := range result.Actions {
				numbers[i] = a.ActionNumber
			}
			if fmt.Sprint(numbers) != fmt.Sprint(tt.wantNumbers) {
				t.Errorf("Expected actions %v, got %v", tt.wantNumbers, numbers)
			}
			if result.TotalActions != 5 {
				t.Errorf("Expected 5 total actions, got %d", result.TotalActions)
			}
			if result.TotalPages != tt.wantPages || result.HasNext != tt.wantNext {
				t.Errorf("Expected %d pages (next=%t), got %d (next=%t)",
					tt.wantPages, tt.wantNext, result.TotalPages, result.HasNext)
			}
		})
	}

	t.Run("limit is capped", func(t *testing.T) {
		result, _ := svc.GetActionHistory(ctx, info.ID, service.HistoryOptions{Limit: 1000})
		if result.PageSize != engine.MaxHistoryPage {
			t.Errorf("Expected page size %d, got %d", engine.MaxHistoryPage, result.PageSize)
		}
	})
}

func TestGameService_ListSessions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx, "test"); err != nil {
			t.Fatalf("Failed to create session %d: %v", i, err)
		}
	}

	sessionList, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(sessionList) != 3 {
		t.Errorf("ListSessions() returned %d sessions, want 3", len(sessionList))
	}
}

func TestGameService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "test")

	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if _, err := svc.GetSession(ctx, info.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.DeleteSession(ctx, info.ID); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	info, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	svc.Reveal(ctx, info.ID, 0, 0)

	state, err := svc.Reset(ctx, info.ID)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if state.GameOver || state.SafeRevealed != 0 {
		t.Error("Expected a fresh board after reset")
	}
	if state.Message != "Welcome to test!" {
		t.Errorf("Expected welcome message, got %q", state.Message)
	}
	if state.TotalActions != 1 {
		t.Errorf("Expected cumulative history to survive reset, got %d", state.TotalActions)
	}
}

func TestGameService_Configs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		t.Fatalf("ListConfigs() error = %v", err)
	}
	if len(configs) != 2 {
		t.Errorf("Expected 2 configs, got %d", len(configs))
	}

	config, err := svc.LoadConfig(ctx, "wide")
	if err != nil || config.Width != 4 {
		t.Errorf("LoadConfig() = %+v, %v", config, err)
	}

	broken := *config
	broken.Messages.Welcome = ""
	if err := svc.SaveConfig(ctx, "broken", &broken); err == nil {
		t.Error("Expected SaveConfig to reject an invalid config")
	}
	if err := svc.SaveConfig(ctx, "copy", config); err != nil {
		t.Errorf("SaveConfig() error = %v", err)
	}
}

func TestGameService_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "test")
	svc.Reveal(ctx, info.ID, 0, 1)
	svc.Reveal(ctx, "missing", 0, 1)

	spans := recorder.Ended()
	if len(spans) != 3 {
		t.Fatalf("Expected 3 spans, got %d", len(spans))
	}

	names := []string{spans[0].Name(), spans[1].Name(), spans[2].Name()}
	expected := []string{"GameService.CreateSession", "GameService.Reveal", "GameService.Reveal"}
	if fmt.Sprint(names) != fmt.Sprint(expected) {
		t.Errorf("Expected spans %v, got %v", expected, names)
	}
	if spans[1].Status().Code == codes.Error {
		t.Error("Expected successful reveal span")
	}
	if spans[2].Status().Code != codes.Error {
		t.Error("Expected failed reveal span to carry an error status")
	}
}

func TestGameService_CameraStaysFinite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	info, _ := svc.CreateSession(ctx, "test")

	tests := []struct {
		name string
		move func() (*engine.Camera, error)
	}{
		{
			name: "pan past the float range",
			move: func() (*engine.Camera, error) {
				return svc.Pan(ctx, info.ID, engine.Point{X: 1e308}, engine.Point{X: -1e308})
			},
		},
		{
			name: "pan with infinite point",
			move: func() (*engine.Camera, error) {
				return svc.Pan(ctx, info.ID, engine.Point{X: math.Inf(1)}, engine.Point{})
			},
		},
		{
			name: "zoom around an overflowing anchor",
			move: func() (*engine.Camera, error) {
				return svc.Zoom(ctx, info.ID, -10, engine.Point{X: 1e308, Y: 1e308})
			},
		},
		{
			name: "zoom with nan steps",
			move: func() (*engine.Camera, error) {
				return svc.Zoom(ctx, info.ID, math.NaN(), engine.Point{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam, err := tt.move()
			if !errors.Is(err, service.ErrInvalidInput) {
				t.Fatalf("Expected ErrInvalidInput, got %v (camera %+v)", err, cam)
			}

			session, err := svc.GetSession(ctx, info.ID)
			if err != nil {
				t.Fatalf("GetSession() error = %v", err)
			}
			if session.Camera != *engine.NewCamera() {
				t.Errorf("Expected camera untouched, got %+v", session.Camera)
			}
		})
	}
}
