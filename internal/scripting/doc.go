// Package scripting embeds a Lua runtime exposing the register store.
//
// Scripts see a global `reg` table with functions to read, write, append,
// clear and list registers, plus register selection. The runtime is meant
// for init scripts and one-off snippets; it is not sandboxed.
package scripting
