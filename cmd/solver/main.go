// Command solver plays Minesweeper against a running server through the REST
// API. It deduces safe cells and mines from the visible numbers, guesses the
// least risky cell when stuck, and resets the board after a loss until it wins
// or runs out of attempts.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/minesweeper/game/engine"
	"github.com/wricardo/mcp-training/minesweeper/game/service"
)

// sessionFile stores the last session ID so reruns continue on the same board
const sessionFile = ".session"

// Client calls the game server's REST API for a single session
type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do sends body as JSON and decodes the response into out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s failed: %s - %s", method, path, resp.Status, bytes.TrimSpace(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

func (c *Client) CreateSession(ctx context.Context, configID string) (*engine.GameState, error) {
	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.do(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return nil, err
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

func (c *Client) GetState(ctx context.Context) (*engine.GameState, error) {
	var state engine.GameState
	if err := c.do(ctx, "GET", "/api/sessions/"+c.sessionID+"/state", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) Reset(ctx context.Context) (*engine.GameState, error) {
	var resp struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}
	if err := c.do(ctx, "POST", "/api/sessions/"+c.sessionID+"/reset", nil, &resp); err != nil {
		return nil, err
	}
	return resp.State, nil
}

// Apply sends one move and returns the new state
func (c *Client) Apply(ctx context.Context, move Move) (*service.ActionResult, error) {
	body := map[string]int{"row": move.Pos.Row, "col": move.Pos.Col}

	var result service.ActionResult
	if err := c.do(ctx, "POST", "/api/sessions/"+c.sessionID+"/"+move.Action, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GameResult summarizes one attempt
type GameResult struct {
	State   *engine.GameState
	Moves   int
	Guesses int
}

// play runs the strategy until the game ends, no move is left, or maxMoves is reached
func play(ctx context.Context, client *Client, strategy *Strategy, state *engine.GameState, maxMoves int, delay time.Duration, verbose bool) (GameResult, error) {
	strategy.Reset()
	result := GameResult{State: state}

	for result.Moves < maxMoves {
		move, ok := strategy.NextMove(result.State)
		if !ok {
			break
		}

		actionResult, err := client.Apply(ctx, move)
		if err != nil {
			return result, err
		}
		result.Moves++
		result.State = actionResult.GameState

		if verbose {
			kind := "deduced"
			if move.Guess {
				kind = "guess"
			}
			log.Printf("%s (%d,%d) [%s] changed=%d revealed=%d/%d",
				move.Action, move.Pos.Row, move.Pos.Col, kind, len(actionResult.Changed),
				result.State.SafeRevealed, result.State.SafeTotal)
		}

		if delay > 0 {
			time.Sleep(delay)
		}
	}

	result.Guesses = strategy.Guesses()
	return result, nil
}

// resumeOrCreate continues the given session, or the one saved in savePath,
// creating a new one when that fails
func resumeOrCreate(ctx context.Context, client *Client, sessionID, configID, savePath string) (*engine.GameState, error) {
	if sessionID == "" {
		if data, err := os.ReadFile(savePath); err == nil {
			sessionID = string(bytes.TrimSpace(data))
		}
	}

	if sessionID != "" {
		client.sessionID = sessionID
		log.Printf("🔄 Resuming session: %s", sessionID)
		state, err := client.GetState(ctx)
		if err == nil {
			return state, nil
		}
		log.Printf("⚠️  Failed to resume session (may be expired): %v", err)
	}

	state, err := client.CreateSession(ctx, configID)
	if err != nil {
		return nil, err
	}
	log.Printf("✨ Session created: %s", client.sessionID)

	if err := os.WriteFile(savePath, []byte(client.sessionID), 0644); err != nil {
		log.Printf("Warning: Failed to save session ID: %v", err)
	}
	return state, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	client := NewClient(cmd.String("url"))
	log.Printf("Connecting to game server at %s", cmd.String("url"))

	if _, err := resumeOrCreate(ctx, client, cmd.String("continue"), cmd.String("config"), sessionFile); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	strategy := NewStrategy()
	maxAttempts := cmd.Int("max-attempts")
	delay := time.Duration(cmd.Int("delay")) * time.Millisecond

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		state, err := client.Reset(ctx)
		if err != nil {
			return fmt.Errorf("failed to reset game: %w", err)
		}

		log.Printf("=== 🎮 Attempt %d/%d (%dx%d, %d mines) ===",
			attempt, maxAttempts, state.Height, state.Width, state.MineCount)

		result, err := play(ctx, client, strategy, state, cmd.Int("max-moves"), delay, cmd.Bool("v"))
		if err != nil {
			return err
		}

		log.Printf("Attempt %d: Moves=%d, Guesses=%d, Revealed=%d/%d",
			attempt, result.Moves, result.Guesses, result.State.SafeRevealed, result.State.SafeTotal)

		if result.State.Win {
			log.Printf("🎉 VICTORY! Board cleared in attempt %d with %d moves", attempt, result.Moves)
			log.Printf("Session: %s", client.sessionID)
			return nil
		}
	}

	log.Printf("Session: %s", client.sessionID)
	return cli.Exit(fmt.Sprintf("❌ Failed to win after %d attempts", maxAttempts), 1)
}

func main() {
	cmd := &cli.Command{
		Name:  "solver",
		Usage: "Play Minesweeper automatically through the REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "Game server URL"},
			&cli.StringFlag{Name: "config", Usage: "Preset to play (easy, medium, hard, ...)"},
			&cli.StringFlag{Name: "continue", Usage: "Resume playing an existing session by ID"},
			&cli.IntFlag{Name: "max-moves", Value: 3000, Usage: "Maximum moves per attempt"},
			&cli.IntFlag{Name: "max-attempts", Value: 100, Usage: "Maximum attempts before giving up"},
			&cli.IntFlag{Name: "delay", Usage: "Delay between moves in milliseconds"},
			&cli.BoolFlag{Name: "v", Usage: "Verbose output"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
