// Package session provides session management for the Minesweeper server.
//
// The session package implements:
//   - Thread-safe in-memory session storage and retrieval
//   - Unique session ID generation
//   - Session expiry by last access time
//
// Core Types:
//
// Manager owns every live service.Session. A session bundles its own
// engine.GameEngine, the board preset it was created from and a camera for
// translating screen clicks, together with creation and last access times.
//
// Session Identifiers:
//
// Generated IDs are 4 hex characters drawn from crypto/rand. Callers may
// choose their own ID made of letters, digits, '-' and '_'. Lookups ignore case.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//	sessions := manager.List()
//
//	// Drop sessions idle for more than a day
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
package session
