// Package middleware provides HTTP middleware for the scheduler API.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics labelled by route template
//
// Both response wrappers pass http.Hijacker through so the player websocket
// can be upgraded behind them.
package middleware
