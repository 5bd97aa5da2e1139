// Package websocket pushes live Minesweeper state to observers.
//
// The websocket package implements:
//   - Session-scoped observer connections
//   - State broadcast after every mutation
//   - Game event fan-out (reveal, flag, chord, game_over, victory)
//   - Ping/pong keepalive and slow-client eviction
//
// Architecture:
//
// A central Hub owns every connection. Registration, broadcast and client
// counting all run on the Hub's Run goroutine, so the session map has a single
// owner. Each connection has a write pump and a read pump goroutine.
//
// Message Protocol:
//
// Outgoing messages are JSON:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//	{"session_id": "ab12", "event": "game_event", "data": {"type": "victory", ...}}
//
// Observers are read-only. Anything they send is discarded; a session has
// exactly one player, who acts through the REST API or MCP tools.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"), currentState)
//	})
package websocket
