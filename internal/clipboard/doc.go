// Package clipboard abstracts system clipboard access for the register
// store.
//
// Clipboard I/O is the only asynchronous boundary in the subsystem: reads
// and writes take a context and may block on the host clipboard transport.
// The register store core stays synchronous; it calls through Provider at a
// single well-defined point per operation.
//
// Two implementations are provided: Memory for tests and single-process
// use, and System backed by the OS clipboard.
package clipboard
