// Package tiling is the calling layer around the reconciliation engine: it
// enforces the accessibility trust precondition, resolves window ids to
// handles, picks the owning screen for a target rectangle, serializes
// reconciliations per window, and fans results out to metrics and event
// subscribers.
//
// The service is fully injectable: control surface, enumerations, trust
// check, and event sink are all interfaces, so tests substitute doubles for
// every collaborator and no process-global state exists.
package tiling
