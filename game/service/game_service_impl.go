package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wricardo/mcp-training/minesweeper/game/engine"
)

const tracerName = "github.com/wricardo/mcp-training/minesweeper/game/service"

// History page defaults
const (
	defaultHistoryLimit = 20
	defaultHistoryOrder = "desc"
)

// gameServiceImpl implements the GameService interface.
// One mutex serializes every mutation so a click is fully applied before the next.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	tracer   trace.Tracer
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		tracer:   otel.Tracer(tracerName),
	}
}

// startSpan opens a span tagged with the session ID
func (s *gameServiceImpl) startSpan(ctx context.Context, name, sessionID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if sessionID != "" {
		attrs = append(attrs, attribute.String("session.id", sessionID))
	}
	return s.tracer.Start(ctx, "GameService."+name, trace.WithAttributes(attrs...))
}

// endSpan records err on the span and ends it
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	if configID == "" {
		configID = s.getConfigID(sess.Config.Name)
	}
	lastAccessed, err := s.sessions.LastAccessed(sess.ID)
	if err != nil {
		lastAccessed = sess.CreatedAt
	}
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: lastAccessed,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
		Camera:         *sess.Camera,
	}
}

// getSession looks up a session and marks it accessed
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	if _, err := s.sessions.UpdateLastAccessed(sessionID); err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return sess, nil
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (info *SessionInfo, err error) {
	_, span := s.startSpan(ctx, "CreateSession", "", attribute.String("config.name", configName))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v: %w", configName, configIDs, err)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations: %w", configName, err)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	span.SetAttributes(attribute.String("session.id", session.ID))

	return s.sessionInfo(session, configName), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (info *SessionInfo, err error) {
	_, span := s.startSpan(ctx, "GetSession", sessionID)
	defer func() { endSpan(span, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess, ""), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	_, span := s.startSpan(ctx, "ListSessions", "")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, ""))
	}
	span.SetAttributes(attribute.Int("sessions.count", len(result)))

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) (err error) {
	_, span := s.startSpan(ctx, "DeleteSession", sessionID)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	return nil
}

// Reveal opens a cell by grid position
func (s *gameServiceImpl) Reveal(ctx context.Context, sessionID string, row, col int) (*ActionResult, error) {
	return s.cellAction(ctx, "Reveal", sessionID, row, col, func(sess *Session) ([]engine.Position, string) {
		return sess.Engine.Reveal(row, col), EventReveal
	})
}

// Flag toggles the flag on a hidden cell
func (s *gameServiceImpl) Flag(ctx context.Context, sessionID string, row, col int) (*ActionResult, error) {
	return s.cellAction(ctx, "Flag", sessionID, row, col, func(sess *Session) ([]engine.Position, string) {
		if !sess.Engine.ToggleFlag(row, col) {
			return nil, EventFlag
		}
		return []engine.Position{{Row: row, Col: col}}, flagEvent(sess, row, col)
	})
}

// Chord reveals the neighbors of a satisfied number cell
func (s *gameServiceImpl) Chord(ctx context.Context, sessionID string, row, col int) (*ActionResult, error) {
	return s.cellAction(ctx, "Chord", sessionID, row, col, func(sess *Session) ([]engine.Position, string) {
		return sess.Engine.Chord(row, col), EventChord
	})
}

// cellAction runs a grid-addressed action after checking bounds
func (s *gameServiceImpl) cellAction(ctx context.Context, name, sessionID string, row, col int,
	apply func(sess *Session) ([]engine.Position, string)) (result *ActionResult, err error) {
	_, span := s.startSpan(ctx, name, sessionID, attribute.Int("cell.row", row), attribute.Int("cell.col", col))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	board := sess.Engine.GetBoard()
	if !board.InBounds(row, col) {
		return nil, fmt.Errorf("cell (%d,%d) is outside the %dx%d board: %w",
			row, col, board.Height(), board.Width(), ErrOutOfBounds)
	}

	wasOver, wasWin := sess.Engine.IsGameOver(), sess.Engine.IsVictory()
	changed, eventType := apply(sess)

	pos := engine.Position{Row: row, Col: col}
	result = s.actionResult(sess, pos, changed, eventType, wasOver, wasWin)
	span.SetAttributes(attribute.Int("cells.changed", len(changed)))
	return result, nil
}

// Click converts a screen point through the session camera and dispatches it
func (s *gameServiceImpl) Click(ctx context.Context, sessionID string, screen engine.Point, button engine.Button) (result *ActionResult, err error) {
	_, span := s.startSpan(ctx, "Click", sessionID,
		attribute.Float64("screen.x", screen.X), attribute.Float64("screen.y", screen.Y),
		attribute.String("button", button.String()))
	defer func() { endSpan(span, err) }()

	if button != engine.Primary && button != engine.Secondary {
		return nil, fmt.Errorf("unknown button %d: %w", button, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	world := sess.Camera.ScreenToWorld(screen)
	board := sess.Engine.GetBoard()
	pos, onBoard := board.Layout().CellAt(world, board.Height(), board.Width())

	// The event depends on what the cell was before the click
	eventType := EventReveal
	if onBoard {
		before, _ := board.Cell(pos.Row, pos.Col)
		if button == engine.Primary && before.Revealed {
			eventType = EventChord
		}
	} else {
		pos = engine.Position{Row: -1, Col: -1}
	}

	wasOver, wasWin := sess.Engine.IsGameOver(), sess.Engine.IsVictory()
	changed := sess.Engine.Click(world, button)
	if button == engine.Secondary && onBoard {
		eventType = flagEvent(sess, pos.Row, pos.Col)
	}

	result = s.actionResult(sess, pos, changed, eventType, wasOver, wasWin)
	span.SetAttributes(attribute.Int("cells.changed", len(changed)))
	return result, nil
}

func flagEvent(sess *Session, row, col int) string {
	cell, _ := sess.Engine.GetBoard().Cell(row, col)
	if cell.Flagged {
		return EventFlag
	}
	return EventUnflag
}

// actionResult builds the result and events for an applied action
func (s *gameServiceImpl) actionResult(sess *Session, pos engine.Position, changed []engine.Position,
	eventType string, wasOver, wasWin bool) *ActionResult {
	state := sess.Engine.GetState()
	now := time.Now()

	action := ""
	if last := sess.Engine.GetLastAction(); last != nil {
		action = last.Action
	}

	if changed == nil {
		changed = []engine.Position{}
	}

	result := &ActionResult{
		Success:   len(changed) > 0,
		Action:    action,
		Position:  pos,
		Changed:   changed,
		GameState: state,
		Message:   state.Message,
		Events:    []GameEvent{},
	}

	if len(changed) == 0 {
		result.Events = append(result.Events, GameEvent{
			Type:      EventNoChange,
			Message:   "Nothing changed",
			Timestamp: now,
			Position:  pos,
		})
		return result
	}

	result.Events = append(result.Events, GameEvent{
		Type:      eventType,
		Message:   eventMessage(eventType, len(changed)),
		Timestamp: now,
		Position:  pos,
	})

	if state.GameOver && !wasOver {
		result.Events = append(result.Events, GameEvent{
			Type:      EventGameOver,
			Message:   sess.Config.Messages.Defeat,
			Timestamp: now,
			Position:  pos,
		})
	}
	if state.Win && !wasWin {
		result.Events = append(result.Events, GameEvent{
			Type:      EventVictory,
			Message:   sess.Config.Messages.Victory,
			Timestamp: now,
			Position:  pos,
		})
	}

	return result
}

func eventMessage(eventType string, changed int) string {
	switch eventType {
	case EventFlag:
		return "Flag placed"
	case EventUnflag:
		return "Flag removed"
	case EventChord:
		return fmt.Sprintf("Chord revealed %d cells", changed)
	default:
		return fmt.Sprintf("Revealed %d cells", changed)
	}
}

// Reset starts a fresh board in the session
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (state *engine.GameState, err error) {
	_, span := s.startSpan(ctx, "Reset", sessionID)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Camera.Reset()
	return sess.Engine.Reset(), nil
}

// Hover reports the cell under a screen point
func (s *gameServiceImpl) Hover(ctx context.Context, sessionID string, screen engine.Point) (result *HoverResult, err error) {
	_, span := s.startSpan(ctx, "Hover", sessionID)
	defer func() { endSpan(span, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	world := sess.Camera.ScreenToWorld(screen)
	board := sess.Engine.GetBoard()
	result = &HoverResult{Screen: screen, World: world}

	pos, ok := board.Layout().CellAt(world, board.Height(), board.Width())
	if !ok {
		return result, nil
	}

	desc, _ := sess.Engine.DescribeCell(pos.Row, pos.Col)
	result.OnBoard = true
	result.Cell = &desc
	return result, nil
}

// Pan drags the session camera
func (s *gameServiceImpl) Pan(ctx context.Context, sessionID string, from, to engine.Point) (cam *engine.Camera, err error) {
	_, span := s.startSpan(ctx, "Pan", sessionID)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if !from.Finite() || !to.Finite() {
		return nil, fmt.Errorf("%w: pan points must be finite", ErrInvalidInput)
	}
	next := *sess.Camera
	next.Pan(from, to)
	return commitCamera(sess, next)
}

// Zoom applies wheel steps anchored on a screen point
func (s *gameServiceImpl) Zoom(ctx context.Context, sessionID string, steps float64, anchor engine.Point) (cam *engine.Camera, err error) {
	_, span := s.startSpan(ctx, "Zoom", sessionID, attribute.Float64("zoom.steps", steps))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(steps) || !anchor.Finite() {
		return nil, fmt.Errorf("%w: zoom steps and anchor must be finite", ErrInvalidInput)
	}
	next := *sess.Camera
	next.ZoomAt(steps, anchor)
	return commitCamera(sess, next)
}

// commitCamera stores next on the session unless it left the finite range,
// in which case the camera is left untouched
func commitCamera(sess *Session, next engine.Camera) (*engine.Camera, error) {
	if !next.Finite() {
		return nil, fmt.Errorf("%w: camera would leave the finite range", ErrInvalidInput)
	}
	*sess.Camera = next
	return &next, nil
}

// DescribeCell returns a player-safe description of one cell
func (s *gameServiceImpl) DescribeCell(ctx context.Context, sessionID string, row, col int) (desc *engine.CellDescription, err error) {
	_, span := s.startSpan(ctx, "DescribeCell", sessionID, attribute.Int("cell.row", row), attribute.Int("cell.col", col))
	defer func() { endSpan(span, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	d, ok := sess.Engine.DescribeCell(row, col)
	if !ok {
		board := sess.Engine.GetBoard()
		return nil, fmt.Errorf("cell (%d,%d) is outside the %dx%d board: %w",
			row, col, board.Height(), board.Width(), ErrOutOfBounds)
	}
	return &d, nil
}

// GetGameState returns the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (state *engine.GameState, err error) {
	_, span := s.startSpan(ctx, "GetGameState", sessionID)
	defer func() { endSpan(span, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Engine.GetState(), nil
}

// GetActionHistory returns one page of the cumulative action history
func (s *gameServiceImpl) GetActionHistory(ctx context.Context, sessionID string, opts HistoryOptions) (resp *HistoryResponse, err error) {
	_, span := s.startSpan(ctx, "GetActionHistory", sessionID)
	defer func() { endSpan(span, err) }()

	if opts.Order != "" && opts.Order != "asc" && opts.Order != "desc" {
		return nil, fmt.Errorf("order must be asc or desc, got %q: %w", opts.Order, ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return paginate(sess.Engine.GetActionHistory(), opts), nil
}

// paginate slices history into the requested page
func paginate(history []engine.ActionHistoryEntry, opts HistoryOptions) *HistoryResponse {
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultHistoryLimit
	}
	if opts.Limit > engine.MaxHistoryPage {
		opts.Limit = engine.MaxHistoryPage
	}
	if opts.Order == "" {
		opts.Order = defaultHistoryOrder
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	actions := []engine.ActionHistoryEntry{}
	if start < total {
		if opts.Order == "desc" {
			// Most recent first
			for i := total - 1 - start; i >= total-end; i-- {
				actions = append(actions, history[i])
			}
		} else {
			actions = append(actions, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Actions:      actions,
		TotalActions: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}
}

// ListConfigs returns available board presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a board preset by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig stores a board preset
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}
