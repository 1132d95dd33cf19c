package register

// OperationKind tags the command class that produced register content.
// The numbered-register rules branch on this tag instead of inspecting
// command objects.
type OperationKind uint8

const (
	// OpYank copies text without modifying the buffer.
	OpYank OperationKind = iota

	// OpDelete removes a motion or selection.
	OpDelete

	// OpDeleteChar removes single characters (x, X).
	OpDeleteChar

	// OpChange removes text and enters insert mode.
	OpChange
)

// String returns the operation kind name.
func (k OperationKind) String() string {
	switch k {
	case OpYank:
		return "yank"
	case OpDelete:
		return "delete"
	case OpDeleteChar:
		return "delete-char"
	case OpChange:
		return "change"
	default:
		return "unknown"
	}
}

// isDeleteClass returns true for kinds that feed the delete history.
func (k OperationKind) isDeleteClass() bool {
	switch k {
	case OpDelete, OpDeleteChar, OpChange:
		return true
	}
	return false
}

// OperationOptions describes the producing operation for numbered-register
// bookkeeping.
type OperationOptions struct {
	// Kind is the command class that produced the content.
	Kind OperationKind

	// RegisterNamed is true when the user explicitly named a target
	// register for the operation.
	RegisterNamed bool

	// LineSpanning is true when the operation crossed a line boundary.
	LineSpanning bool

	// MacroContext is true while recording or replaying a macro.
	MacroContext bool
}

// RecordOperation applies the numbered-register invariants for a yank or
// delete. It is called by the producing command, never by paste.
//
// Yanks without an explicit target write registers 0 and ". Line-spanning
// deletes rotate 9<-8<-...<-1 and write 1; deletes within a line write -
// instead. Both delete paths also update ". Macro contexts skip all
// numbered bookkeeping, taking precedence over line-spanning.
func (s *Store) RecordOperation(c Content, mode Mode, opts OperationOptions) {
	if opts.MacroContext {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Content: c, Mode: mode}

	switch {
	case opts.Kind == OpYank:
		if !opts.RegisterNamed {
			s.registers[LastYank] = entry
			s.registers[Unnamed] = entry
		}
	case opts.Kind.isDeleteClass():
		if opts.LineSpanning {
			s.rotateNumberedLocked()
			s.registers['1'] = entry
		} else {
			s.registers[SmallDelete] = entry
		}
		s.registers[Unnamed] = entry
	}
}

// rotateNumberedLocked shifts the delete history 9<-8<-...<-2<-1,
// discarding the old 9.
func (s *Store) rotateNumberedLocked() {
	for r := '9'; r > '1'; r-- {
		if e, ok := s.registers[r-1]; ok {
			s.registers[r] = e
		} else {
			delete(s.registers, r)
		}
	}
}
