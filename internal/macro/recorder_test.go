package macro

import "testing"

func runeEvents(s string) []KeyEvent {
	events := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		events = append(events, KeyEvent{Rune: r})
	}
	return events
}

func TestRecorderStartStop(t *testing.T) {
	r := NewRecorder()

	if err := r.StartRecording('a'); err != nil {
		t.Fatalf("StartRecording: %v", err)
	}
	if !r.IsRecording() {
		t.Fatal("expected recording to be active")
	}
	if got := r.CurrentRegister(); got != 'a' {
		t.Errorf("CurrentRegister = %c, want a", got)
	}

	for _, e := range runeEvents("dw") {
		r.Record(e)
	}

	rec := r.StopRecording()
	if rec == nil {
		t.Fatal("StopRecording returned nil")
	}
	if rec.Len() != 2 {
		t.Errorf("recording length = %d, want 2", rec.Len())
	}
	if rec.Register() != 'a' {
		t.Errorf("recording register = %c, want a", rec.Register())
	}
	if rec.ID() == "" {
		t.Error("recording has empty id")
	}
}

func TestRecorderAlreadyRecording(t *testing.T) {
	r := NewRecorder()
	if err := r.StartRecording('a'); err != nil {
		t.Fatalf("StartRecording: %v", err)
	}
	if err := r.StartRecording('b'); err == nil {
		t.Fatal("expected error starting a second recording")
	}
}

func TestRecorderInvalidRegister(t *testing.T) {
	r := NewRecorder()
	if err := r.StartRecording('#'); err == nil {
		t.Fatal("expected error for invalid register")
	}
}

func TestRecorderEmptyRecordingDiscarded(t *testing.T) {
	r := NewRecorder()
	if err := r.StartRecording('a'); err != nil {
		t.Fatalf("StartRecording: %v", err)
	}
	if rec := r.StopRecording(); rec != nil {
		t.Fatal("expected nil recording when no events captured")
	}
	if got := r.Get('a'); got != nil {
		t.Fatal("empty recording should not be saved")
	}
}

func TestRecorderUppercaseAppends(t *testing.T) {
	r := NewRecorder()

	if err := r.StartRecording('a'); err != nil {
		t.Fatalf("StartRecording: %v", err)
	}
	for _, e := range runeEvents("dw") {
		r.Record(e)
	}
	r.StopRecording()

	if err := r.StartRecording('A'); err != nil {
		t.Fatalf("StartRecording append: %v", err)
	}
	for _, e := range runeEvents("x") {
		r.Record(e)
	}
	rec := r.StopRecording()

	if rec == nil {
		t.Fatal("StopRecording returned nil")
	}
	if rec.Len() != 3 {
		t.Errorf("appended recording length = %d, want 3", rec.Len())
	}
	if got := r.Get('a'); got == nil || got.Len() != 3 {
		t.Error("register a should hold the appended recording")
	}
}

func TestRecorderLastPlayed(t *testing.T) {
	r := NewRecorder()
	if got := r.LastPlayed(); got != 0 {
		t.Errorf("LastPlayed = %c, want 0", got)
	}
	r.MarkPlayed('Q')
	if got := r.LastPlayed(); got != 'q' {
		t.Errorf("LastPlayed = %c, want q", got)
	}
}

func TestRecordingEventsCopied(t *testing.T) {
	events := runeEvents("abc")
	rec := NewRecording('a', events)
	events[0].Rune = 'z'

	if got := rec.Events()[0].Rune; got != 'a' {
		t.Errorf("recording mutated through input slice: got %c", got)
	}

	out := rec.Events()
	out[1].Rune = 'z'
	if got := rec.Events()[1].Rune; got != 'b' {
		t.Errorf("recording mutated through output slice: got %c", got)
	}
}
