// Package api provides the HTTP REST API for the Minesweeper server.
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions                 - Create a session ({"config_id": "easy"})
//   - GET    /api/sessions                 - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET    /api/sessions/unified         - Several sessions at once (?sessionIds=a,b or ?configName=easy)
//   - GET    /api/sessions/{id}            - Get one session
//   - DELETE /api/sessions/{id}            - Delete a session
//
// Game Operations:
//   - GET  /api/sessions/{id}/state        - Current game state
//   - POST /api/sessions/{id}/reveal       - Reveal a cell ({"row": 3, "col": 4})
//   - POST /api/sessions/{id}/flag         - Toggle a flag ({"row": 3, "col": 4})
//   - POST /api/sessions/{id}/chord        - Chord a satisfied number ({"row": 3, "col": 4})
//   - POST /api/sessions/{id}/click        - Screen-space click ({"x": 120, "y": 64, "button": "primary"})
//   - POST /api/sessions/{id}/reset        - New board with the same preset
//   - GET  /api/sessions/{id}/history      - Action history (?page=1&limit=20&order=desc)
//
// View:
//   - GET  /api/sessions/{id}/hover        - Cell under a screen point (?x=120&y=64)
//   - POST /api/sessions/{id}/camera/pan   - Drag the camera ({"from": {...}, "to": {...}})
//   - POST /api/sessions/{id}/camera/zoom  - Wheel zoom ({"steps": 1, "anchor": {"x": 0, "y": 0}})
//   - GET  /api/sessions/{id}/cells/{r}/{c} - Player-safe cell description
//
// Configuration:
//   - GET  /api/configs                    - List presets
//   - POST /api/configs                    - Save a preset under its name
//   - GET  /api/configs/{name}             - Get a preset
//   - PUT  /api/configs/{name}             - Save a preset under {name}
//
// Other:
//   - GET /ws?session={id}                 - WebSocket observer stream
//   - GET /health                          - Liveness and session count
//
// Errors:
//
// Errors are returned as JSON, {"error": "message"}. Unknown sessions and
// presets give 404; out-of-bounds cells, malformed bodies and invalid presets
// give 400; anything else is a 500.
//
// Every mutating request is pushed to the session's WebSocket observers as a
// state_update followed by one game_event per emitted event.
package api
