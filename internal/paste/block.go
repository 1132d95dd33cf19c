package paste

import (
	"strings"

	"github.com/dshills/vimreg/internal/edit"
)

// pasteBlock distributes block content over successive lines starting at
// the cursor line, one insert per block line. Columns clamp to each target
// line's length, and blank lines are appended first when the block extends
// past the end of the buffer. The cursor lands on the block's anchor
// column.
func (e *Engine) pasteBlock(req Request, text string) []edit.Instruction {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	start := req.Position.Line
	col := req.Position.Character
	bufLines := e.buf.LineCount()

	var instrs []edit.Instruction

	if missing := start + len(lines) - bufLines; missing > 0 {
		lastIdx := bufLines - 1
		instrs = append(instrs, edit.InsertText{
			Text:     strings.Repeat("\n", missing),
			Position: edit.Position{Line: lastIdx, Character: runeLen(e.buf.LineText(lastIdx))},
		})
	}

	for i, blockLine := range lines {
		target := start + i
		tcol := 0
		if target < bufLines {
			tcol = col
			if l := runeLen(e.buf.LineText(target)); tcol > l {
				tcol = l
			}
		}
		instrs = append(instrs, edit.InsertText{
			Text:     blockLine,
			Position: edit.Position{Line: target, Character: tcol},
		})
	}

	instrs = append(instrs, edit.MoveCursor{
		Diff:        edit.ExactCharacterDiff(0, col),
		CursorIndex: req.CursorIndex,
	})
	return instrs
}
