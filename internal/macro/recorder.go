package macro

import (
	"fmt"
	"sync"
)

// Recorder records key sequences for macro playback.
// It maintains a set of registers, each capable of storing one recording.
type Recorder struct {
	mu         sync.Mutex
	recording  bool
	register   rune
	appending  bool
	events     []KeyEvent
	registers  map[rune]*Recording
	lastPlayed rune // tracks last played register for @@ support
}

// NewRecorder creates a new macro recorder with empty registers.
func NewRecorder() *Recorder {
	return &Recorder{
		registers: make(map[rune]*Recording),
	}
}

// StartRecording begins recording to the specified register.
// Recording to an uppercase register appends to the lowercase one.
// Returns an error if already recording or if the register is invalid.
func (r *Recorder) StartRecording(register rune) error {
	if !IsValidRegister(register) {
		return fmt.Errorf("invalid macro register: %c", register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return fmt.Errorf("already recording to register %c", r.register)
	}

	r.recording = true
	r.appending = IsAppendRegister(register)
	r.register = NormalizeRegister(register)
	r.events = nil
	return nil
}

// StopRecording ends the current recording and saves it to the register.
// Returns the saved recording, or nil if not recording or nothing was
// captured.
func (r *Recorder) StopRecording() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil
	}

	r.recording = false
	if len(r.events) == 0 {
		return nil
	}

	events := r.events
	if r.appending {
		if prev, ok := r.registers[r.register]; ok {
			events = append(prev.Events(), events...)
		}
	}
	rec := NewRecording(r.register, events)
	r.registers[r.register] = rec
	r.events = nil
	return rec
}

// IsRecording returns true if currently recording.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// CurrentRegister returns the register being recorded to, or 0 if not
// recording.
func (r *Recorder) CurrentRegister() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return r.register
	}
	return 0
}

// Record adds a key event to the current recording.
// Does nothing if not recording.
func (r *Recorder) Record(event KeyEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.events = append(r.events, event)
	}
}

// Get retrieves the recording stored in a register, or nil if empty.
func (r *Recorder) Get(register rune) *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registers[NormalizeRegister(register)]
}

// Set stores a recording in a register, replacing any existing content.
// Returns an error if the register is invalid.
func (r *Recorder) Set(register rune, rec *Recording) error {
	if !IsValidRegister(register) {
		return fmt.Errorf("invalid macro register: %c", register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.registers[NormalizeRegister(register)] = rec
	return nil
}

// MarkPlayed records that a register was played, for @@ repeat support.
func (r *Recorder) MarkPlayed(register rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastPlayed = NormalizeRegister(register)
}

// LastPlayed returns the last played register, or 0 if none.
func (r *Recorder) LastPlayed() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastPlayed
}
