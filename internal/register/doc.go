// Package register implements the Vim register store: a keyed store of
// reusable text and macro recordings with put/append/get semantics,
// special-register rules, and the numbered-register delete history.
//
// # Register Names
//
// A register name is a single character from one of four classes:
//
//   - a-z: named registers, plain storage
//   - A-Z: append targets; writes append to the lowercase register
//   - 0-9: numbered registers; 0 is the last unnamed yank, 1-9 rotate
//     through recent line-spanning deletes (1 newest)
//   - specials: " (unnamed), * and + (system clipboard), . (last insert,
//     read-only), - (small delete), / (last search, read-only), : (last
//     command, read-only), % and # (file paths, read-only), _ (black hole)
//
// # Content
//
// Register content is a closed sum: Text for single-cursor content,
// MultiText with one slot per cursor for multicursor operations, and
// Recording for macro payloads. Consumers switch exhaustively over the
// three shapes.
//
// # Ownership
//
// The store is an explicit instance threaded through every call that needs
// registers; there is no package-level singleton, so tests run isolated
// stores in parallel. The host dispatches commands strictly sequentially;
// the internal mutex only keeps the type safe under concurrent tests and
// background reloads.
package register
