package register

import (
	"strings"

	"github.com/dshills/vimreg/internal/macro"
)

// Mode governs how register content is re-inserted on paste.
type Mode uint8

const (
	// ModeAscertain is a placeholder meaning "derive from the caller's
	// current editor mode".
	ModeAscertain Mode = iota

	// ModeCharacterWise inserts inline at a column.
	ModeCharacterWise

	// ModeLineWise inserts as whole lines.
	ModeLineWise

	// ModeBlockWise inserts as a rectangular column-aligned block.
	ModeBlockWise
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAscertain:
		return "ascertain"
	case ModeCharacterWise:
		return "characterwise"
	case ModeLineWise:
		return "linewise"
	case ModeBlockWise:
		return "blockwise"
	default:
		return "unknown"
	}
}

// Content is the payload held by a register entry. The set of shapes is
// closed: Text, MultiText, and Recording. Consumers must switch over all
// three.
type Content interface {
	isContent()
}

// Text is single-cursor register content.
type Text string

func (Text) isContent() {}

// MultiText holds one entry per active cursor, produced by a multicursor
// operation. When read with a different cursor count it degrades to a
// single newline-joined string.
type MultiText []string

func (MultiText) isContent() {}

// Recording wraps a recorded keystroke sequence. Pasting it requests a
// key replay instead of a text insertion.
type Recording struct {
	Handle *macro.Recording
}

func (Recording) isContent() {}

// Entry pairs register content with its mode. A materialized entry never
// has an undefined mode.
type Entry struct {
	Content Content
	Mode    Mode
}

// emptyEntry is what reads of never-written registers auto-vivify to.
func emptyEntry() Entry {
	return Entry{Content: Text(""), Mode: ModeCharacterWise}
}

// contentText flattens content to a single string. Recordings have no text
// form; the second return is false for them.
func contentText(c Content) (string, bool) {
	switch v := c.(type) {
	case Text:
		return string(v), true
	case MultiText:
		return strings.Join(v, "\n"), true
	case Recording:
		return "", false
	default:
		return "", false
	}
}

// concatText joins existing and incoming register text under the append
// rule: character-wise onto character-wise concatenates directly, anything
// else inserts a line break and adopts the incoming mode.
func concatText(existing string, existingMode Mode, add string, addMode Mode) (string, Mode) {
	if existing == "" {
		return add, addMode
	}
	if existingMode == ModeCharacterWise && addMode == ModeCharacterWise {
		return existing + add, ModeCharacterWise
	}
	return existing + "\n" + add, addMode
}

// normalizeLineEndings folds Windows line endings to a single newline
// convention. Applied to clipboard reads only.
func normalizeLineEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
