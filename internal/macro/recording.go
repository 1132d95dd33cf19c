package macro

import (
	"time"

	"github.com/google/uuid"
)

// KeyEvent is a single recorded keystroke.
type KeyEvent struct {
	// Rune is the typed character, zero for named keys.
	Rune rune

	// Name is the named key ("<Esc>", "<CR>") when Rune is zero.
	Name string
}

// Recording is an immutable recorded keystroke sequence.
// The register store treats it as an opaque payload; replay is the host
// editor's job.
type Recording struct {
	id         string
	register   rune
	events     []KeyEvent
	recordedAt time.Time
}

// NewRecording creates a recording of events captured for register.
// The events slice is copied.
func NewRecording(register rune, events []KeyEvent) *Recording {
	saved := make([]KeyEvent, len(events))
	copy(saved, events)
	return &Recording{
		id:         uuid.NewString(),
		register:   register,
		events:     saved,
		recordedAt: time.Now(),
	}
}

// ID returns the unique identifier of this recording.
func (r *Recording) ID() string {
	return r.id
}

// Register returns the register the recording was captured for.
func (r *Recording) Register() rune {
	return r.register
}

// Events returns a copy of the recorded key events.
func (r *Recording) Events() []KeyEvent {
	out := make([]KeyEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded key events.
func (r *Recording) Len() int {
	return len(r.events)
}

// RecordedAt returns the time the recording was created.
func (r *Recording) RecordedAt() time.Time {
	return r.recordedAt
}
