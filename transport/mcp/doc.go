// Package mcp exposes Minesweeper to AI agents over the Model Context Protocol.
//
// The Client is a thin proxy: every tool call becomes a REST request against
// the api package, and the JSON response is rendered as text for the agent.
//
// MCP Tools:
//   - create_session, list_sessions, get_session: Session management
//   - game_state: Board rendered with row and column labels
//   - reveal, flag, chord: Grid actions by row and column (optional intent)
//   - click: Screen-space click through the session camera
//   - reset_game: New board with the same preset
//   - action_history: Paginated history plus the current game's actions
//   - list_configs: Available presets
//   - describe_cell: Neighbour counts and chord eligibility for one tile
//   - game_instructions: Rules and strategy
//
// Board Legend:
//
//	#  hidden      F  flagged     *  mine
//	.  zero        1-8  neighbouring mine count
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: POST JSON-RPC bodies to /mcp, handled by GetMCPServer().HandleMessage
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
