package edit

// Instruction is one step of a buffer transformation. The set is closed;
// consumers switch exhaustively over the concrete types.
type Instruction interface {
	isInstruction()
}

// InsertText inserts Text at Position and then applies Diff to the cursor
// that triggered the edit.
type InsertText struct {
	Text     string
	Position Position
	Diff     CursorDiff
}

func (InsertText) isInstruction() {}

// DeleteRange removes the text between Start (inclusive) and End
// (exclusive). An End on the line past the last buffer line addresses the
// end of the buffer; hosts clamp it.
type DeleteRange struct {
	Start Position
	End   Position
}

func (DeleteRange) isInstruction() {}

// MoveCursor applies Diff to the cursor at CursorIndex without touching
// text.
type MoveCursor struct {
	Diff        CursorDiff
	CursorIndex int
}

func (MoveCursor) isInstruction() {}

// MacroReplay asks the host to replay the recording stored in Register as
// if its keys were typed.
type MacroReplay struct {
	Register rune
}

func (MacroReplay) isInstruction() {}
