// Package server wires configuration, logging, metrics, the window-system
// backend, the tiling service, and the HTTP/WebSocket surface into one
// runnable daemon.
package server
