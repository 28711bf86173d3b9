// Package http provides the gin handlers for the daemon's REST surface.
//
// Endpoints:
//   - GET  /                       service banner
//   - GET  /health                 health and trust state
//   - GET  /windows                enumerate windows with geometry
//   - GET  /screens                enumerate displays
//   - POST /windows/:id/reconcile  drive a window to a target rectangle
//   - POST /windows/:id/activate   raise a window
//
// Geometry mismatch never maps to an HTTP error: a finished reconciliation
// returns 200 with the outcome body regardless of convergence. Only the
// trust precondition (403), an unknown window (404), and a malformed target
// (400) are errors.
package http
