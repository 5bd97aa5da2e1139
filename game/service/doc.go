// Package service provides the business logic layer for the Minesweeper server.
//
// The service package implements:
//   - Multi-session game management
//   - Grid-addressed reveal, flag and chord actions
//   - Screen-space clicks, hovering and camera control per session
//   - Paginated action history
//   - Configuration listing, loading and saving
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages board preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transports (HTTP, WebSocket, MCP) and the
// game engine. Each session owns its own engine and camera. A single mutex
// serializes every mutation, so one input is applied completely before the
// next one is read. Every operation opens an OpenTelemetry span; without a
// configured provider these are no-ops.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	sessionInfo, err := gameService.CreateSession(ctx, "easy")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Reveal(ctx, sessionInfo.ID, 3, 4)
//	for _, event := range result.Events {
//		fmt.Println(event.Type, event.Message)
//	}
//
// Errors:
//
// Failures wrap ErrSessionNotFound, ErrConfigNotFound, ErrOutOfBounds or
// ErrInvalidInput so transports can pick a status code with errors.Is.
package service
