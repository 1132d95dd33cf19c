// Package config loads the TOML settings file.
//
// A missing file yields the defaults; a malformed or invalid one fails
// loudly. Settings cover the clipboard integration mode, register
// persistence, and the Lua scripting hook.
package config
