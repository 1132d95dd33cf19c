package paste

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/vimreg/internal/edit"
	"github.com/dshills/vimreg/internal/register"
)

// BufferReader provides read access to the host text buffer. The engine
// only ever reads; mutations flow back as instructions.
type BufferReader interface {
	// LineCount returns the number of lines in the buffer.
	LineCount() int

	// LineText returns the text of a line without its trailing newline.
	LineText(line int) string
}

// Indenter re-indents pasted lines. Indent-width detection is the host's
// business; the engine only calls through.
type Indenter interface {
	// IndentWidthOf returns the leading indent width of a line.
	IndentWidthOf(line string) int

	// WithIndentWidth returns the line re-indented to the given width.
	WithIndentWidth(line string, width int) string
}

// EditorMode is the modal state at the paste site.
type EditorMode uint8

const (
	// ModeNormal is normal mode.
	ModeNormal EditorMode = iota

	// ModeVisual is a character-wise linear selection.
	ModeVisual

	// ModeVisualLine is a line-wise linear selection.
	ModeVisualLine

	// ModeVisualBlock is a rectangular selection.
	ModeVisualBlock
)

// String returns the mode name.
func (m EditorMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeVisual:
		return "visual"
	case ModeVisualLine:
		return "visual-line"
	case ModeVisualBlock:
		return "visual-block"
	default:
		return "unknown"
	}
}

// isVisual returns true for the selection-replacing modes.
func (m EditorMode) isVisual() bool {
	return m == ModeVisual || m == ModeVisualLine || m == ModeVisualBlock
}

// Selection is a linear selection with an exclusive end.
type Selection struct {
	Start edit.Position
	End   edit.Position
}

// Request carries the per-invocation paste context.
type Request struct {
	// Register is the register to paste from; zero means the store's
	// selected register.
	Register rune

	// Position is the triggering cursor position.
	Position edit.Position

	// Mode is the modal state at the paste site.
	Mode EditorMode

	// Selection is the active selection in the visual modes.
	Selection Selection

	// Before pastes before the reference position (P) instead of after (p).
	Before bool

	// Count repeats the paste; zero and one both mean once.
	Count int

	// ForceLinewise treats the register as line-wise regardless of its
	// stored mode.
	ForceLinewise bool

	// AdjustIndent re-indents line-wise content to the destination line.
	AdjustIndent bool

	// ForceCursorLastLine lands the cursor on the last line the paste
	// added.
	ForceCursorLastLine bool

	// CursorIndex is this cursor's index in a multicursor run.
	CursorIndex int

	// CursorCount is the number of active cursors; zero and one both
	// mean a single cursor.
	CursorCount int
}

// count returns the effective repeat count.
func (r Request) count() int {
	if r.Count > 1 {
		return r.Count
	}
	return 1
}

// Engine computes paste instructions against a register store and a
// read-only buffer view.
type Engine struct {
	store  *register.Store
	buf    BufferReader
	indent Indenter
}

// NewEngine creates a paste engine. The indenter may be nil, in which case
// indent adjustment is a no-op.
func NewEngine(store *register.Store, buf BufferReader, indent Indenter) *Engine {
	return &Engine{store: store, buf: buf, indent: indent}
}

// Paste resolves the requested register and computes the ordered edit
// instructions for one paste at one cursor.
func (e *Engine) Paste(ctx context.Context, req Request) ([]edit.Instruction, error) {
	name := req.Register
	if name == 0 {
		name = e.store.Selected()
	}

	entry, err := e.store.Get(ctx, name, register.GetOptions{CursorCount: req.CursorCount})
	if err != nil {
		return nil, err
	}

	// Macro content replays keys; no text-insertion math applies.
	if _, ok := entry.Content.(register.Recording); ok {
		return []edit.Instruction{edit.MacroReplay{Register: register.Normalize(name)}}, nil
	}

	text, err := e.cursorText(entry, req)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	mode := effectiveMode(entry.Mode, req)

	if mode == register.ModeBlockWise && req.Mode == ModeVisualBlock {
		return e.pasteBlock(req, text), nil
	}
	if req.Mode.isVisual() {
		return e.pasteVisual(ctx, req, name, text, mode)
	}

	switch mode {
	case register.ModeLineWise:
		return e.pasteLinewise(req, text), nil
	case register.ModeBlockWise:
		return e.pasteBlockInline(req, text), nil
	default:
		return e.pasteCharacterwise(req, text), nil
	}
}

// cursorText resolves entry content to this cursor's text. MultiText
// reaching here has a slot per cursor; anything else was already joined by
// the store.
func (e *Engine) cursorText(entry register.Entry, req Request) (string, error) {
	switch c := entry.Content.(type) {
	case register.Text:
		return string(c), nil
	case register.MultiText:
		if req.CursorCount > 1 {
			if req.CursorIndex < 0 || req.CursorIndex >= len(c) {
				return "", fmt.Errorf("%w: cursor %d of %d", register.ErrMissingCursorIndex, req.CursorIndex, len(c))
			}
			return c[req.CursorIndex], nil
		}
		return strings.Join(c, "\n"), nil
	default:
		return "", nil
	}
}

// effectiveMode resolves the placeholder mode and the force-linewise
// option against the paste site.
func effectiveMode(m register.Mode, req Request) register.Mode {
	if req.ForceLinewise {
		return register.ModeLineWise
	}
	if m == register.ModeAscertain {
		if req.Mode == ModeVisualLine {
			return register.ModeLineWise
		}
		return register.ModeCharacterWise
	}
	return m
}

// pasteCharacterwise inserts the register text inline. The anchor is the
// cursor position, or one column right unless pasting before.
func (e *Engine) pasteCharacterwise(req Request, text string) []edit.Instruction {
	repeated := strings.Repeat(text, req.count())
	pos := req.Position
	line := e.buf.LineText(pos.Line)
	lineLen := runeLen(line)

	col := pos.Character
	if !req.Before && lineLen > 0 && col < lineLen {
		col++
	}

	return []edit.Instruction{edit.InsertText{
		Text:     repeated,
		Position: edit.Position{Line: pos.Line, Character: col},
		Diff:     charwiseDiff(col, repeated),
	}}
}

// charwiseDiff lands the cursor on the last pasted character of text
// inserted at column anchorCol.
func charwiseDiff(anchorCol int, text string) edit.CursorDiff {
	i := strings.LastIndexByte(text, '\n')
	if i < 0 {
		return edit.ExactCharacterDiff(0, maxInt(anchorCol+runeLen(text)-1, 0))
	}
	newlines := strings.Count(text, "\n")
	return edit.ExactCharacterDiff(newlines, maxInt(runeLen(text[i+1:])-1, 0))
}

// pasteLinewise inserts whole lines above or below the destination line.
func (e *Engine) pasteLinewise(req Request, text string) []edit.Instruction {
	pos := req.Position
	count := req.count()

	body := strings.TrimSuffix(text, "\n")
	if count > 1 {
		body = strings.TrimSuffix(strings.Repeat(body+"\n", count), "\n")
	}
	if req.AdjustIndent {
		body = e.reindent(body, e.buf.LineText(pos.Line))
	}

	var insert edit.InsertText
	if req.Before {
		insert = edit.InsertText{
			Text:     body + "\n",
			Position: edit.Position{Line: pos.Line, Character: 0},
			Diff:     edit.ExactCharacterDiff(0, firstNonBlank(firstLine(body))),
		}
	} else {
		lineEnd := runeLen(e.buf.LineText(pos.Line))
		insert = edit.InsertText{
			Text:     "\n" + body,
			Position: edit.Position{Line: pos.Line, Character: lineEnd},
			Diff:     edit.ExactCharacterDiff(1, firstNonBlank(firstLine(body))),
		}
	}

	if req.ForceCursorLastLine {
		shift := lineCountOf(body)
		if req.Before {
			shift--
		}
		insert.Diff = edit.ExactCharacterDiff(shift, firstNonBlank(lastLine(body)))
	}

	instrs := []edit.Instruction{insert}

	// A repeated line-wise paste appends a compensating move so the
	// cursor ends up above the full height of the inserted block.
	if count > 1 {
		net := lineCountOf(strings.TrimSuffix(text, "\n")) * count
		instrs = append(instrs, edit.MoveCursor{
			Diff:        edit.CursorDiff{Line: -net},
			CursorIndex: req.CursorIndex,
		})
	}
	return instrs
}

// pasteBlockInline handles block-wise register content outside
// visual-block mode: raw text at the cursor, column offset by paste side.
func (e *Engine) pasteBlockInline(req Request, text string) []edit.Instruction {
	col := req.Position.Character
	if !req.Before {
		col++
	}
	return []edit.Instruction{edit.InsertText{
		Text:     text,
		Position: edit.Position{Line: req.Position.Line, Character: col},
		Diff:     edit.ExactCharacterDiff(0, maxInt(col+runeLen(firstLine(text))-1, 0)),
	}}
}

// reindent shifts every line of body so the first line matches the
// destination line's indent, preserving relative indentation.
func (e *Engine) reindent(body, destLine string) string {
	if e.indent == nil {
		return body
	}
	lines := strings.Split(body, "\n")
	base := e.indent.IndentWidthOf(lines[0])
	dest := e.indent.IndentWidthOf(destLine)
	for i, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		width := e.indent.IndentWidthOf(ln) - base + dest
		if width < 0 {
			width = 0
		}
		lines[i] = e.indent.WithIndentWidth(ln, width)
	}
	return strings.Join(lines, "\n")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// firstNonBlank returns the column of the first non-blank character, or 0
// for empty and all-blank lines.
func firstNonBlank(line string) int {
	col := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			return col
		}
		col++
	}
	return 0
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func lineCountOf(s string) int {
	return strings.Count(s, "\n") + 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
