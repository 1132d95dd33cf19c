package paste

import (
	"context"
	"strings"

	"github.com/dshills/vimreg/internal/edit"
	"github.com/dshills/vimreg/internal/register"
)

// pasteVisual replaces the active selection with register content. The
// replaced text behaves like a delete: it lands in the unnamed and
// numbered registers, while the register being pasted keeps its value.
func (e *Engine) pasteVisual(ctx context.Context, req Request, name rune, text string, mode register.Mode) ([]edit.Instruction, error) {
	if mode == register.ModeLineWise {
		return e.replacePasteLinewise(req, name, text), nil
	}
	return e.replacePasteCharacterwise(ctx, req, text)
}

// replacePasteLinewise deletes the selection and inserts whole lines in
// its place. The paste source and the unnamed register are snapshotted
// around the delete bookkeeping so the source survives its own paste.
func (e *Engine) replacePasteLinewise(req Request, name rune, text string) []edit.Instruction {
	sel := req.Selection
	lastLineIdx := e.buf.LineCount() - 1

	restore := e.store.Save(name, register.Unnamed)
	deleted := e.selectionText(req)
	e.store.RecordOperation(register.Text(deleted), selectionMode(req.Mode), register.OperationOptions{
		Kind:         register.OpDelete,
		LineSpanning: req.Mode == ModeVisualLine || strings.Contains(deleted, "\n"),
	})
	restore()

	delStart, delEnd := sel.Start, sel.End
	if req.Mode == ModeVisualLine {
		delStart = edit.Position{Line: sel.Start.Line, Character: 0}
		delEnd = edit.Position{Line: sel.End.Line + 1, Character: 0}
	}

	core := strings.TrimSuffix(text, "\n")
	if count := req.count(); count > 1 {
		core = strings.TrimSuffix(strings.Repeat(core+"\n", count), "\n")
	}
	if req.AdjustIndent {
		core = e.reindent(core, e.buf.LineText(sel.Start.Line))
	}

	// Wrap so line boundaries survive the replacement: a selection below
	// the first buffer line leaves text above that must keep its line, and
	// one above the last line leaves text below. Visual-line deletes
	// consume whole lines, so only the trailing boundary applies there.
	body := core
	if req.Mode == ModeVisualLine {
		body += "\n"
	} else {
		if sel.Start.Line > 0 {
			body = "\n" + body
		}
		if sel.End.Line < lastLineIdx {
			body += "\n"
		}
	}

	firstPasted := delStart.Line
	if strings.HasPrefix(body, "\n") {
		firstPasted++
	}
	endPasted := firstPasted + lineCountOf(core) - 1

	target := endPasted
	if req.Mode == ModeVisualLine && sel.End.Line >= lastLineIdx {
		target = endPasted - 1
		if target < firstPasted {
			target = firstPasted
		}
	}
	bodyLines := strings.Split(core, "\n")
	idx := target - firstPasted
	if idx < 0 {
		idx = 0
	} else if idx >= len(bodyLines) {
		idx = len(bodyLines) - 1
	}

	return []edit.Instruction{
		edit.DeleteRange{Start: delStart, End: delEnd},
		edit.InsertText{
			Text:     body,
			Position: delStart,
			Diff:     edit.ExactCharacterDiff(target-req.Position.Line, firstNonBlank(bodyLines[idx])),
		},
	}
}

// replacePasteCharacterwise inserts at the selection start, yanks the
// displaced original selection into the default register, and deletes it.
func (e *Engine) replacePasteCharacterwise(ctx context.Context, req Request, text string) ([]edit.Instruction, error) {
	sel := req.Selection
	repeated := strings.Repeat(text, req.count())

	instrs := []edit.Instruction{edit.InsertText{
		Text:     repeated,
		Position: sel.Start,
		Diff:     charwiseDiff(sel.Start.Character, repeated),
	}}

	selText := e.selectionText(req)
	err := e.store.Put(ctx, e.store.DefaultRegister(), register.Text(selText), selectionMode(req.Mode), register.PutOptions{})
	if err != nil {
		return nil, err
	}

	instrs = append(instrs, edit.DeleteRange{
		Start: displace(sel.Start, sel.Start, repeated),
		End:   displace(sel.End, sel.Start, repeated),
	})
	return instrs, nil
}

// selectionMode maps the visual mode to a register mode for the replaced
// text.
func selectionMode(m EditorMode) register.Mode {
	if m == ModeVisualLine {
		return register.ModeLineWise
	}
	return register.ModeCharacterWise
}

// selectionText reads the selected text out of the buffer. Visual-line
// selections cover whole lines including trailing newlines.
func (e *Engine) selectionText(req Request) string {
	sel := req.Selection
	if req.Mode == ModeVisualLine {
		var b strings.Builder
		for l := sel.Start.Line; l <= sel.End.Line && l < e.buf.LineCount(); l++ {
			b.WriteString(e.buf.LineText(l))
			b.WriteByte('\n')
		}
		return b.String()
	}

	if sel.Start.Line == sel.End.Line {
		return runeSlice(e.buf.LineText(sel.Start.Line), sel.Start.Character, sel.End.Character)
	}

	var b strings.Builder
	first := e.buf.LineText(sel.Start.Line)
	b.WriteString(runeSlice(first, sel.Start.Character, runeLen(first)))
	b.WriteByte('\n')
	for l := sel.Start.Line + 1; l < sel.End.Line; l++ {
		b.WriteString(e.buf.LineText(l))
		b.WriteByte('\n')
	}
	b.WriteString(runeSlice(e.buf.LineText(sel.End.Line), 0, sel.End.Character))
	return b.String()
}

// displace shifts a position that sat at or after anchor by the insertion
// of text at anchor.
func displace(p, anchor edit.Position, text string) edit.Position {
	newlines := strings.Count(text, "\n")
	if p.Line != anchor.Line {
		return edit.Position{Line: p.Line + newlines, Character: p.Character}
	}
	if newlines == 0 {
		return edit.Position{Line: p.Line, Character: p.Character + runeLen(text)}
	}
	return edit.Position{
		Line:      p.Line + newlines,
		Character: runeLen(lastLine(text)) + (p.Character - anchor.Character),
	}
}

// runeSlice returns the rune range [from, to) of s, clamped to its length.
func runeSlice(s string, from, to int) string {
	runes := []rune(s)
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	if from >= to {
		return ""
	}
	return string(runes[from:to])
}
