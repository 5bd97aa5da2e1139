package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/minesweeper/transport/mcp"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	expectedAppName := "Minesweeper Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

// parseOptions runs the CLI with args and captures the resolved options
func parseOptions(t *testing.T, args ...string) (options, string) {
	t.Helper()

	var got options
	var mode string
	cmd := newCommand()
	cmd.Action = func(ctx context.Context, c *cli.Command) error {
		got, mode = optionsFrom(c), "server"
		return nil
	}
	for _, sub := range cmd.Commands {
		name := sub.Name
		sub.Action = func(ctx context.Context, c *cli.Command) error {
			got, mode = optionsFrom(c), name
			return nil
		}
	}

	if err := cmd.Run(context.Background(), append([]string{"minesweeper"}, args...)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return got, mode
}

func TestFlagDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONFIG_DIR", "")

	opts, mode := parseOptions(t)

	if mode != "server" {
		t.Errorf("Expected default mode server, got %s", mode)
	}
	if opts.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", opts.Port)
	}
	if opts.Host != "localhost" {
		t.Errorf("Expected default host localhost, got %s", opts.Host)
	}
	if opts.ConfigDir != "configs" {
		t.Errorf("Expected default config dir configs, got %s", opts.ConfigDir)
	}
	if opts.Addr() != "localhost:8080" {
		t.Errorf("Expected addr localhost:8080, got %s", opts.Addr())
	}
}

func TestFlagsFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("CONFIG_DIR", "/tmp/presets")
	t.Setenv("NGROK_ENABLED", "true")
	t.Setenv("NGROK_AUTHTOKEN", "")
	t.Setenv("NGROK_AUTH_TOKEN", "tok")

	opts, _ := parseOptions(t)

	if opts.Port != 9191 {
		t.Errorf("Expected port 9191, got %d", opts.Port)
	}
	if opts.ConfigDir != "/tmp/presets" {
		t.Errorf("Expected config dir from env, got %s", opts.ConfigDir)
	}
	if !opts.NgrokEnabled {
		t.Error("Expected ngrok enabled from env")
	}
	if opts.NgrokAuth != "tok" {
		t.Errorf("Expected auth token from NGROK_AUTH_TOKEN, got %q", opts.NgrokAuth)
	}
}

func TestSubcommands(t *testing.T) {
	t.Setenv("PORT", "")

	tests := []struct {
		args     []string
		wantMode string
		wantPort int
	}{
		{[]string{"server"}, "server", 8080},
		{[]string{"http"}, "server", 8080},
		{[]string{"mcp"}, "mcp", 8080},
		{[]string{"stdio-mcp"}, "mcp", 8080},
		{[]string{"--port", "9090", "mcp"}, "mcp", 9090},
		{[]string{"mcp", "--port", "9091"}, "mcp", 9091},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			opts, mode := parseOptions(t, tt.args...)
			if mode != tt.wantMode {
				t.Errorf("Expected mode %s, got %s", tt.wantMode, mode)
			}
			if opts.Port != tt.wantPort {
				t.Errorf("Expected port %d, got %d", tt.wantPort, opts.Port)
			}
		})
	}
}

func TestInitializeServices(t *testing.T) {
	gameService, sessions, err := initializeServices(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil || sessions == nil {
		t.Fatal("Expected game service and session manager to be initialized")
	}

	// Built-in presets work without any files
	info, err := gameService.CreateSession(context.Background(), "easy")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if info.GameState.Height != 8 || info.GameState.Width != 8 {
		t.Errorf("Expected 8x8 board, got %dx%d", info.GameState.Height, info.GameState.Width)
	}
	if sessions.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", sessions.Count())
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	_, _, err := initializeServices("/non/existent/path")
	if err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

func TestSessionCleanupRoutine(t *testing.T) {
	gameService, sessions, err := initializeServices(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	if _, err := gameService.CreateSession(context.Background(), "easy"); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sessionCleanupRoutine(ctx, sessions, 5*time.Millisecond, 0)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for sessions.Count() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sessions.Count() != 0 {
		t.Errorf("Expected expired session to be removed, %d remain", sessions.Count())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Cleanup routine did not stop after cancel")
	}
}

func TestMCPHandler(t *testing.T) {
	handler := mcpHandler(mcp.NewClient("http://127.0.0.1:1"))

	t.Run("rejects GET", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/mcp", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("Expected 405, got %d", w.Code)
		}
	})

	t.Run("lists tools", func(t *testing.T) {
		body := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("POST", "/mcp", body))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %s", ct)
		}
		if !strings.Contains(w.Body.String(), `"name":"reveal"`) {
			t.Errorf("Expected reveal tool in response, got %s", w.Body.String())
		}
	})
}

func TestMainRouter(t *testing.T) {
	gameService, _, err := initializeServices(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	internalURL, httpServer, err := startInternalAPI(gameService)
	if err != nil {
		t.Fatalf("Failed to start internal API: %v", err)
	}
	defer httpServer.Close()

	if !externalAPIAvailable(internalURL) {
		t.Fatal("Expected internal API to answer health checks")
	}
	if externalAPIAvailable("http://127.0.0.1:1") {
		t.Error("Expected closed port to be reported unavailable")
	}

	router := newMainRouter(httpServer.Handler, mcp.NewClient(internalURL))
	server := httptest.NewServer(router)
	defer server.Close()

	// Create a session through the MCP proxy, backed by the internal API
	body := strings.NewReader(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"create_session","arguments":{"config_id":"easy"}}}`)
	resp, err := http.Post(server.URL+"/mcp", "application/json", body)
	if err != nil {
		t.Fatalf("MCP request failed: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/api/sessions")
	if err != nil {
		t.Fatalf("List sessions failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from API through main router, got %d", resp.StatusCode)
	}

	sessions, err := gameService.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("Expected 1 session created through MCP, got %d", len(sessions))
	}
}
