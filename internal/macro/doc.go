// Package macro provides keystroke recording payloads for the register
// subsystem.
//
// A macro is a recorded sequence of key events stored in a register.
// Pasting a register that holds a recording does not insert text; it asks
// the host editor to replay the recorded keys instead.
//
// # Registers
//
// Macro recordings accept a slightly broader register charset than general
// register content: letters (a-z, A-Z), digits (0-9), and ':'. Uppercase
// letters append to the corresponding lowercase register, matching Vim's
// qA behavior.
//
// # Thread Safety
//
// Recorder is safe for concurrent use. Recording values are immutable once
// created.
package macro
