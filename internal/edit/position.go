package edit

// Position addresses a character in the buffer by line and column.
// Both are zero-based; Character counts runes, not bytes.
type Position struct {
	Line      int
	Character int
}

// Before returns true if p addresses a character strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// WithLine returns a copy of p on the given line.
func (p Position) WithLine(line int) Position {
	p.Line = line
	return p
}

// WithCharacter returns a copy of p at the given column.
func (p Position) WithCharacter(character int) Position {
	p.Character = character
	return p
}

// CursorDiff describes how the cursor moves after an instruction is applied.
//
// Line is always a relative shift. Character is a relative delta unless
// ExactCharacter is set, in which case it is the absolute column the cursor
// lands on after the line shift.
type CursorDiff struct {
	Line           int
	Character      int
	ExactCharacter bool
}

// ExactCharacterDiff builds a diff that shifts lines lines and lands on
// absolute column character.
func ExactCharacterDiff(lines, character int) CursorDiff {
	return CursorDiff{Line: lines, Character: character, ExactCharacter: true}
}
