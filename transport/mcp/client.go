package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/minesweeper/game/engine"
	"github.com/wricardo/mcp-training/minesweeper/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Minesweeper",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Minesweeper - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Reveal every safe tile without revealing a mine. Numbers count the mines in the
eight surrounding tiles.

AVAILABLE TOOLS:
- create_session: Create a new game session (easy, medium, hard, or a custom preset)
- game_state: Get the current board
- reveal: Reveal a tile by row/col - requires intent explanation
- flag: Toggle a flag on a hidden tile - requires intent explanation
- chord: Reveal around a number whose flags are all placed - requires intent explanation
- click: Screen-space click through the session camera
- reset_game: Start a new board with the same preset
- action_history: View past actions
- get_session / list_sessions: Inspect sessions
- list_configs: List available presets
- describe_cell: Neighbour counts for one tile
- game_instructions: Rules and strategy

NOTE: The 'intent' parameter on reveal/flag/chord serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

// cellActionSchema is shared by reveal, flag and chord
func cellActionSchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"session_id": sessionIDProperty(),
			"row": map[string]interface{}{
				"type":        "integer",
				"description": "Row of the tile (0-based, top to bottom)",
			},
			"col": map[string]interface{}{
				"type":        "integer",
				"description": "Column of the tile (0-based, left to right)",
			},
			"intent": map[string]interface{}{
				"type":        "string",
				"description": "Brief explanation of why this tile (serves as a rubber duck to help explain your reasoning)",
			},
		},
		Required: []string{"session_id", "row", "col"},
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset to use, e.g. easy, medium, hard (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board and counters",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reveal",
		Description: "Reveal a hidden tile. Zeros flood outward; a mine ends the game.",
		InputSchema: cellActionSchema(),
	}, c.cellActionHandler("reveal"))

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "flag",
		Description: "Toggle a flag on a hidden tile",
		InputSchema: cellActionSchema(),
	}, c.cellActionHandler("flag"))

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "chord",
		Description: "On a revealed number whose neighbouring flags equal the number, reveal every other neighbour",
		InputSchema: cellActionSchema(),
	}, c.cellActionHandler("chord"))

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "click",
		Description: "Click a screen point through the session camera. Primary reveals (and chords a satisfied number), secondary toggles a flag.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"x": map[string]interface{}{
					"type":        "number",
					"description": "Screen X in pixels",
				},
				"y": map[string]interface{}{
					"type":        "number",
					"description": "Screen Y in pixels",
				},
				"button": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"primary", "secondary"},
					"description": "Mouse button (default primary)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleClick)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Start a new board with the same preset",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "action_history",
		Description: "Get the action history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Oldest first (asc) or newest first (desc, default)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleActionHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules and strategy notes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about one tile: its state, its number, and how many neighbours are flagged or still hidden. Tells you whether a chord would do anything.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the tile (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the tile (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}
	return args
}

// intArg reads a required integer argument. JSON numbers arrive as float64.
func intArg(args map[string]interface{}, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s is required and must be an integer", name)
	}
}

func floatArg(args map[string]interface{}, name string) (float64, error) {
	switch v := args[name].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%s is required and must be a number", name)
	}
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := "playing"
		if s.GameState != nil {
			status = outcome(s.GameState)
		}
		fmt.Fprintf(&b, "- %s (Config: %s, Created: %s, %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"), status)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

// cellActionHandler proxies reveal, flag and chord
func (c *Client) cellActionHandler(action string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := arguments(request)
		sessionID, _ := args["session_id"].(string)

		// Intent serves as rubber duck debugging; nothing reads it
		_, _ = args["intent"].(string)

		row, err := intArg(args, "row")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		col, err := intArg(args, "col")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var result service.ActionResult
		body := map[string]int{"row": row, "col": col}
		if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/"+action), body, &result); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(formatActionResult(&result)), nil
	}
}

func (c *Client) handleClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	button, _ := args["button"].(string)

	x, err := floatArg(args, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := floatArg(args, "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := map[string]interface{}{"x": x, "y": y}
	if button != "" {
		body["button"] = button
	}

	var result service.ActionResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/click"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatActionResult(&result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))), nil
}

func (c *Client) handleActionHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	params := url.Values{}
	if page, err := intArg(args, "page"); err == nil {
		params.Set("page", fmt.Sprint(page))
	}
	if limit, err := intArg(args, "limit"); err == nil {
		params.Set("limit", fmt.Sprint(limit))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		params.Set("order", order)
	}

	path := sessionPath(sessionID, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)

	// Also show the current game from live state
	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err == nil {
		result += "\n" + formatCurrentSegment(&state)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		layout := ""
		if config.FixedLayout {
			layout = ", fixed layout"
		}
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Grid: %dx%d, Mines: %d%s\n\n",
			config.Name, config.ConfigID, config.Description, config.Height, config.Width, config.Mines, layout)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	row, err := intArg(args, "row")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	col, err := intArg(args, "col")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var desc engine.CellDescription
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, fmt.Sprintf("/cells/%d/%d", row, col)), nil, &desc); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCellDescription(&desc)), nil
}

const instructions = `Minesweeper - Complete Instructions

GAME OBJECTIVE:
Reveal every safe tile. Revealing a mine ends the game.

BOARD LEGEND:
• # - Hidden tile
• F - Flagged tile (your marker; it does not need to be right)
• . - Revealed tile with no neighbouring mines
• 1-8 - Revealed tile; the number of mines among its eight neighbours
• * - Mine (only shown once the game is lost)

ACTIONS:
• reveal(row, col): Opens a hidden, unflagged tile. A zero opens all its
  neighbours automatically, cascading through connected zeros.
• flag(row, col): Toggles a flag. Flagged tiles cannot be revealed by accident.
• chord(row, col): On a revealed number N with exactly N flagged neighbours,
  reveals every other hidden neighbour at once. A wrong flag makes this lose.
• click(x, y, button): The same actions in screen space. Primary reveals a
  hidden tile or chords a revealed number; secondary toggles a flag.

COORDINATES:
• Rows count from 0 at the top, columns from 0 at the left.
• The board shown by game_state prints column digits above and row numbers
  on the left.

STRATEGY:
1. Start in the middle of the board; a zero opens a large area.
2. A number N with exactly N hidden neighbours: every one of them is a mine. Flag them.
3. A number N with N flagged neighbours: every other neighbour is safe. Chord it.
4. Compare adjacent numbers. If a 1 touches two hidden tiles and a neighbouring 1
   touches the same two plus a third, the third is safe.
5. Use describe_cell to read flagged/hidden neighbour counts instead of counting by eye.
6. When nothing is certain, prefer tiles far from high numbers.

VICTORY:
All safe tiles revealed. Flags are not required.

GAME OVER:
A mine was revealed. Every mine is shown and the board is frozen; use reset_game.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Presets: easy (8x8, 10 mines), medium (16x16, 40), hard (16x30, 99)

Remember: every move should be justified by the numbers. Good luck!`

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\nCamera: (%.1f, %.1f) zoom %.2f\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		session.Camera.X, session.Camera.Y, session.Camera.Zoom,
		formatGameState(session.GameState))
}

func outcome(state *engine.GameState) string {
	switch {
	case state.Win:
		return "won"
	case state.GameOver:
		return "lost"
	default:
		return "playing"
	}
}

// formatGameState renders the board with row and column labels
func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	fmt.Fprintf(&result, "Board: %dx%d | Mines: %d | Flags: %d | Mines left: %d | Revealed: %d/%d | Actions: %d\n\n",
		state.Height, state.Width, state.MineCount, state.FlagsPlaced, state.MinesLeft,
		state.SafeRevealed, state.SafeTotal, state.TotalActions)

	labelWidth := len(fmt.Sprint(len(state.Grid) - 1))
	result.WriteString(strings.Repeat(" ", labelWidth+1))
	for c := 0; c < state.Width; c++ {
		result.WriteString(fmt.Sprint(c % 10))
	}
	result.WriteString("\n")

	for r, row := range engine.RenderGrid(state.Grid) {
		fmt.Fprintf(&result, "%*d %s\n", labelWidth, r, row)
	}

	if state.Win {
		result.WriteString("\n🎉 VICTORY!")
	} else if state.GameOver {
		result.WriteString("\n💀 GAME OVER")
	}

	if state.Message != "" {
		fmt.Fprintf(&result, "\nMessage: %s", state.Message)
	}

	return result.String()
}

func formatActionResult(result *service.ActionResult) string {
	var b strings.Builder
	if result.Success {
		fmt.Fprintf(&b, "✓ %s at (%d,%d) changed %d tile(s)\n", result.Action,
			result.Position.Row, result.Position.Col, len(result.Changed))
	} else {
		fmt.Fprintf(&b, "✗ %s at (%d,%d) changed nothing\n", result.Action,
			result.Position.Row, result.Position.Col)
	}

	for _, event := range result.Events {
		fmt.Fprintf(&b, "Event: %s - %s\n", event.Type, event.Message)
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatCellDescription(desc *engine.CellDescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tile (%d,%d): %s\n", desc.Position.Row, desc.Position.Col, desc.State)

	if desc.State == engine.StateRevealed {
		if desc.IsMine {
			b.WriteString("Mine\n")
		} else {
			fmt.Fprintf(&b, "Neighbouring mines: %d\n", desc.Count)
		}
	}

	fmt.Fprintf(&b, "Flagged neighbours: %d\nHidden neighbours: %d\n", desc.FlaggedAround, desc.HiddenAround)

	if desc.Chordable {
		b.WriteString("Chordable: yes - every hidden neighbour would be revealed\n")
	} else {
		b.WriteString("Chordable: no\n")
	}

	if desc.State == engine.StateRevealed && !desc.IsMine && desc.Count > 0 {
		remaining := desc.Count - desc.FlaggedAround
		switch {
		case remaining == desc.HiddenAround && remaining > 0:
			b.WriteString("Hint: every hidden neighbour is a mine\n")
		case remaining == 0 && desc.HiddenAround > 0:
			b.WriteString("Hint: every hidden neighbour is safe\n")
		}
	}

	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Action History (Page %d/%d) - Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalActions)

	for _, entry := range history.Actions {
		b.WriteString(formatEntry(entry))
	}

	return b.String()
}

func formatEntry(entry engine.ActionHistoryEntry) string {
	button := ""
	if entry.Button != "" {
		button = " " + entry.Button
	}
	return fmt.Sprintf("%d. %s%s (%d,%d) → %s [changed: %d]\n",
		entry.ActionNumber, entry.Action, button, entry.Position.Row, entry.Position.Col, entry.Result, entry.Changed)
}

func formatCurrentSegment(state *engine.GameState) string {
	header := fmt.Sprintf("Current Game - Actions: %d\n\n", state.CurrentActionsCount)
	if len(state.CurrentActions) == 0 {
		return header + "(no actions in current game)"
	}

	var b strings.Builder
	b.WriteString(header)
	for _, entry := range state.CurrentActions {
		b.WriteString(formatEntry(entry))
	}
	return b.String()
}
