package paste

import (
	"context"
	"testing"

	"github.com/dshills/vimreg/internal/edit"
	"github.com/dshills/vimreg/internal/macro"
	"github.com/dshills/vimreg/internal/register"
)

// sliceBuffer is a read-only buffer backed by a line slice.
type sliceBuffer []string

func (b sliceBuffer) LineCount() int { return len(b) }

func (b sliceBuffer) LineText(line int) string {
	if line < 0 || line >= len(b) {
		return ""
	}
	return b[line]
}

// spaceIndenter measures and rewrites indentation in single spaces.
type spaceIndenter struct{}

func (spaceIndenter) IndentWidthOf(line string) int {
	w := 0
	for _, r := range line {
		if r != ' ' {
			break
		}
		w++
	}
	return w
}

func (spaceIndenter) WithIndentWidth(line string, width int) string {
	trimmed := line
	for len(trimmed) > 0 && trimmed[0] == ' ' {
		trimmed = trimmed[1:]
	}
	out := make([]byte, 0, width+len(trimmed))
	for i := 0; i < width; i++ {
		out = append(out, ' ')
	}
	return string(append(out, trimmed...))
}

func newTestEngine(t *testing.T, buf sliceBuffer) (*Engine, *register.Store) {
	t.Helper()
	s := register.NewStore()
	return NewEngine(s, buf, spaceIndenter{}), s
}

func put(t *testing.T, s *register.Store, name rune, text string, mode register.Mode) {
	t.Helper()
	if err := s.Put(context.Background(), name, register.Text(text), mode, register.PutOptions{}); err != nil {
		t.Fatalf("Put(%q): %v", string(name), err)
	}
}

func paste(t *testing.T, e *Engine, req Request) []edit.Instruction {
	t.Helper()
	instrs, err := e.Paste(context.Background(), req)
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	return instrs
}

func singleInsert(t *testing.T, instrs []edit.Instruction) edit.InsertText {
	t.Helper()
	if len(instrs) != 1 {
		t.Fatalf("got %d instructions, want 1: %v", len(instrs), instrs)
	}
	ins, ok := instrs[0].(edit.InsertText)
	if !ok {
		t.Fatalf("instruction = %T, want InsertText", instrs[0])
	}
	return ins
}

func TestPasteCharacterwiseAfter(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world"})
	put(t, s, 'a', "XY", register.ModeCharacterWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'a',
		Position: edit.Position{Line: 0, Character: 4},
	}))

	if ins.Text != "XY" {
		t.Errorf("text = %q", ins.Text)
	}
	// After-paste lands one column right of the cursor.
	if ins.Position != (edit.Position{Line: 0, Character: 5}) {
		t.Errorf("position = %+v", ins.Position)
	}
	want := edit.ExactCharacterDiff(0, 6)
	if ins.Diff != want {
		t.Errorf("diff = %+v, want %+v", ins.Diff, want)
	}
}

func TestPasteCharacterwiseBefore(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world"})
	put(t, s, 'a', "XY", register.ModeCharacterWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'a',
		Position: edit.Position{Line: 0, Character: 4},
		Before:   true,
	}))

	if ins.Position != (edit.Position{Line: 0, Character: 4}) {
		t.Errorf("position = %+v", ins.Position)
	}
	if want := edit.ExactCharacterDiff(0, 5); ins.Diff != want {
		t.Errorf("diff = %+v, want %+v", ins.Diff, want)
	}
}

func TestPasteCharacterwiseEmptyLineNoShift(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{""})
	put(t, s, 'a', "X", register.ModeCharacterWise)

	ins := singleInsert(t, paste(t, e, Request{Register: 'a'}))
	if ins.Position != (edit.Position{Line: 0, Character: 0}) {
		t.Errorf("position = %+v, empty line must not shift the anchor", ins.Position)
	}
}

func TestPasteCharacterwiseCount(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world"})
	put(t, s, 'a', "ab", register.ModeCharacterWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'a',
		Position: edit.Position{Line: 0, Character: 4},
		Count:    3,
	}))

	if ins.Text != "ababab" {
		t.Errorf("text = %q, want ababab", ins.Text)
	}
	if want := edit.ExactCharacterDiff(0, 10); ins.Diff != want {
		t.Errorf("diff = %+v, want %+v", ins.Diff, want)
	}
}

func TestPasteCharacterwiseMultiline(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world"})
	put(t, s, 'a', "one\ntwo", register.ModeCharacterWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'a',
		Position: edit.Position{Line: 0, Character: 4},
	}))

	// Cursor lands on the last character of the last inserted line.
	if want := edit.ExactCharacterDiff(1, 2); ins.Diff != want {
		t.Errorf("diff = %+v, want %+v", ins.Diff, want)
	}
}

func TestPasteLinewiseAfter(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world", "second"})
	put(t, s, 'l', "alpha\n", register.ModeLineWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'l',
		Position: edit.Position{Line: 0, Character: 3},
	}))

	if ins.Text != "\nalpha" {
		t.Errorf("text = %q, want \\nalpha", ins.Text)
	}
	if ins.Position != (edit.Position{Line: 0, Character: 11}) {
		t.Errorf("position = %+v, want end of current line", ins.Position)
	}
	if want := edit.ExactCharacterDiff(1, 0); ins.Diff != want {
		t.Errorf("diff = %+v, want %+v", ins.Diff, want)
	}
}

func TestPasteLinewiseBefore(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world"})
	put(t, s, 'l', "  alpha\n", register.ModeLineWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'l',
		Position: edit.Position{Line: 0, Character: 3},
		Before:   true,
	}))

	if ins.Text != "  alpha\n" {
		t.Errorf("text = %q", ins.Text)
	}
	if ins.Position != (edit.Position{Line: 0, Character: 0}) {
		t.Errorf("position = %+v, want start of line", ins.Position)
	}
	// First non-blank of the pasted line.
	if want := edit.ExactCharacterDiff(0, 2); ins.Diff != want {
		t.Errorf("diff = %+v, want %+v", ins.Diff, want)
	}
}

func TestPasteLinewiseCountCompensation(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world"})
	put(t, s, 'l', "alpha\n", register.ModeLineWise)

	instrs := paste(t, e, Request{
		Register: 'l',
		Position: edit.Position{Line: 0, Character: 0},
		Count:    2,
	})
	if len(instrs) != 2 {
		t.Fatalf("got %d instructions, want insert+move", len(instrs))
	}
	ins := instrs[0].(edit.InsertText)
	if ins.Text != "\nalpha\nalpha" {
		t.Errorf("text = %q", ins.Text)
	}
	mv, ok := instrs[1].(edit.MoveCursor)
	if !ok {
		t.Fatalf("second instruction = %T, want MoveCursor", instrs[1])
	}
	if mv.Diff.Line != -2 {
		t.Errorf("compensating move = %d lines, want -2", mv.Diff.Line)
	}
}

func TestPasteLinewiseForceCursorLastLine(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello world"})
	put(t, s, 'l', "a\n  b\n", register.ModeLineWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register:            'l',
		Position:            edit.Position{Line: 0, Character: 0},
		ForceCursorLastLine: true,
	}))

	if want := edit.ExactCharacterDiff(2, 2); ins.Diff != want {
		t.Errorf("diff = %+v, want last pasted line first non-blank", ins.Diff)
	}
}

func TestPasteLinewiseAdjustIndent(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"    dest"})
	put(t, s, 'l', "  x\n    y\n", register.ModeLineWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register:     'l',
		Position:     edit.Position{Line: 0, Character: 0},
		AdjustIndent: true,
		Before:       true,
	}))

	// First line matches the destination indent, relative offsets kept.
	if ins.Text != "    x\n      y\n" {
		t.Errorf("text = %q", ins.Text)
	}
}

func TestPasteForceLinewise(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello"})
	put(t, s, 'a', "chunk", register.ModeCharacterWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register:      'a',
		Position:      edit.Position{Line: 0, Character: 2},
		ForceLinewise: true,
	}))

	if ins.Text != "\nchunk" {
		t.Errorf("text = %q, force-linewise should paste whole lines", ins.Text)
	}
}

func TestPasteAscertainDefaultsToCharacterwise(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello"})
	put(t, s, 'a', "X", register.ModeAscertain)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'a',
		Position: edit.Position{Line: 0, Character: 0},
	}))
	if ins.Text != "X" || ins.Position.Line != 0 {
		t.Errorf("insert = %+v, want inline paste", ins)
	}
}

func TestPasteBlockInline(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello"})
	put(t, s, 'b', "ab\ncd", register.ModeBlockWise)

	ins := singleInsert(t, paste(t, e, Request{
		Register: 'b',
		Position: edit.Position{Line: 0, Character: 2},
	}))

	// Outside visual-block mode the raw text goes in inline.
	if ins.Text != "ab\ncd" {
		t.Errorf("text = %q", ins.Text)
	}
	if ins.Position != (edit.Position{Line: 0, Character: 3}) {
		t.Errorf("position = %+v", ins.Position)
	}
}

func TestPasteMacroReplay(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"x"})
	rec := macro.NewRecording('q', []macro.KeyEvent{{Rune: 'd'}, {Rune: 'w'}})
	err := s.Put(context.Background(), 'q', register.Recording{Handle: rec}, register.ModeCharacterWise, register.PutOptions{})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	instrs := paste(t, e, Request{Register: 'Q'})
	if len(instrs) != 1 {
		t.Fatalf("got %d instructions, want 1", len(instrs))
	}
	replay, ok := instrs[0].(edit.MacroReplay)
	if !ok {
		t.Fatalf("instruction = %T, want MacroReplay", instrs[0])
	}
	if replay.Register != 'q' {
		t.Errorf("replay register = %q, want q", string(replay.Register))
	}
}

func TestPasteEmptyRegisterIsNoop(t *testing.T) {
	e, _ := newTestEngine(t, sliceBuffer{"x"})
	instrs := paste(t, e, Request{Register: 'z'})
	if len(instrs) != 0 {
		t.Errorf("got %d instructions, want none", len(instrs))
	}
}

func TestPasteInvalidRegister(t *testing.T) {
	e, _ := newTestEngine(t, sliceBuffer{"x"})
	if _, err := e.Paste(context.Background(), Request{Register: '!'}); err == nil {
		t.Error("expected error for invalid register name")
	}
}

func TestPasteUsesSelectedRegister(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello"})
	put(t, s, 'a', "picked", register.ModeCharacterWise)
	if err := s.Select('a'); err != nil {
		t.Fatalf("Select: %v", err)
	}

	ins := singleInsert(t, paste(t, e, Request{Position: edit.Position{Line: 0, Character: 0}}))
	if ins.Text != "picked" {
		t.Errorf("text = %q, want the selected register's content", ins.Text)
	}
}

func TestPasteMulticursorSlot(t *testing.T) {
	e, s := newTestEngine(t, sliceBuffer{"hello", "world"})
	ctx := context.Background()
	for i, part := range []string{"one", "two"} {
		if err := s.PutAt(ctx, 'x', i, 2, register.Text(part), register.ModeCharacterWise, register.PutOptions{}); err != nil {
			t.Fatalf("PutAt: %v", err)
		}
	}

	ins := singleInsert(t, paste(t, e, Request{
		Register:    'x',
		Position:    edit.Position{Line: 1, Character: 0},
		CursorIndex: 1,
		CursorCount: 2,
	}))
	if ins.Text != "two" {
		t.Errorf("text = %q, want this cursor's slot", ins.Text)
	}
}
