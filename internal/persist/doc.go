// Package persist saves register contents across sessions.
//
// Registers are written to a versioned JSON file, atomically via a
// temporary file and rename. Clipboard-backed registers and macro
// recordings are skipped: the former belong to the system clipboard, the
// latter to the macro store's own persistence.
//
// A file watcher built on fsnotify reports external changes to the
// register file so long-running hosts can reload it.
package persist
