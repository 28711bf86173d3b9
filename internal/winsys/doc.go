// Package winsys defines the capability interfaces between the tiling engine
// and the OS window server: reading and writing another process's window
// geometry, enumerating windows and screens, raising windows, and the
// accessibility trust precondition.
//
// The reconciliation controller only ever sees these interfaces. Concrete OS
// bindings implement them on one side; the in-memory simulator in winsys/sim
// implements them for tests and demo runs on the other. Nothing downcasts to
// a concrete backend type.
package winsys
