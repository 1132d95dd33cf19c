package register

import (
	"context"
	"fmt"
	"strings"
)

// PutAt places one cursor's content into its slot of a multicursor
// register write.
//
// Multicursor runs execute sequentially over cursor indices 0..N-1 and no
// run sees its siblings except through the store, so aggregation is a
// two-phase protocol: index 0 allocates the MultiText entry (for append
// targets an existing MultiText of matching length is reused and appended
// into in place), every index fills its slot, and the last index finalizes
// by pushing clipboard registers to the provider and running the numbered
// bookkeeping once over the aggregated content.
func (s *Store) PutAt(ctx context.Context, name rune, cursorIndex, cursorCount int, c Content, mode Mode, opts PutOptions) error {
	if cursorCount <= 1 {
		// Single-cursor runs take the plain path.
		return s.Put(ctx, name, c, mode, opts)
	}
	if cursorIndex < 0 || cursorIndex >= cursorCount {
		return fmt.Errorf("%w: index %d of %d cursors", ErrMissingCursorIndex, cursorIndex, cursorCount)
	}

	if name == 0 {
		name = s.Selected()
	}
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidRegisterName, string(name))
	}
	if name == BlackHole {
		return nil
	}
	if IsReadOnlyName(name) && !opts.Force {
		return nil
	}

	slotText, ok := contentText(c)
	if !ok {
		return fmt.Errorf("recording content cannot join a multicursor write to register %q", string(name))
	}

	appendTarget := IsAppendName(name)
	target := Normalize(name)

	s.mu.Lock()
	if cursorIndex == 0 {
		s.allocateRunLocked(target, cursorCount, mode, appendTarget)
	}
	e := s.entryLocked(target)
	mt, ok := e.Content.(MultiText)
	if !ok || len(mt) != cursorCount {
		// A foreign write landed mid-run; start the slots over.
		mt = make(MultiText, cursorCount)
	}
	if appendTarget {
		text, newMode := concatText(mt[cursorIndex], e.Mode, slotText, mode)
		mt[cursorIndex] = text
		e.Mode = newMode
	} else {
		mt[cursorIndex] = slotText
	}
	e.Content = mt
	s.registers[target] = e
	final := Entry{Content: mt, Mode: e.Mode}
	s.mu.Unlock()

	if cursorIndex != cursorCount-1 {
		return nil
	}

	// Last cursor of the run: finalize.
	if IsClipboardName(target) {
		if err := s.mirrorJoined(ctx, mt); err != nil {
			return err
		}
	}
	if opts.Operation != nil {
		s.RecordOperation(final.Content, final.Mode, *opts.Operation)
	}
	return nil
}

// allocateRunLocked prepares the register for a fresh multicursor run.
// Overwrite targets always get a new empty slot array; append targets keep
// an existing MultiText of the right length so slots accumulate.
func (s *Store) allocateRunLocked(target rune, cursorCount int, mode Mode, appendTarget bool) {
	if appendTarget {
		existing := s.entryLocked(target)
		if mt, ok := existing.Content.(MultiText); ok && len(mt) == cursorCount {
			return
		}
	}
	s.registers[target] = Entry{Content: make(MultiText, cursorCount), Mode: mode}
}

// mirrorJoined pushes aggregated slots to the clipboard provider as one
// newline-joined string with the trailing newline trimmed.
func (s *Store) mirrorJoined(ctx context.Context, mt MultiText) error {
	p := s.clipboardProvider()
	if p == nil {
		return nil
	}
	joined := strings.TrimSuffix(strings.Join(mt, "\n"), "\n")
	return p.Copy(ctx, joined)
}
