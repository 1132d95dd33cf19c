// Package edit defines the instruction stream the paste engine hands to the
// host editor's buffer layer.
//
// The paste engine never mutates text itself. It produces an ordered slice
// of instructions; the host applies them strictly in order, which is the
// only synchronization contract between the two. Positions use
// line/character addressing. Cursor movement is expressed as a CursorDiff,
// either a relative line/character delta or an exact target column after a
// relative line shift.
package edit
