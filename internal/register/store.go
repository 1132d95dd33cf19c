package register

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/vimreg/internal/clipboard"
)

// Store manages all registers. Create one per editor instance with
// NewStore and thread it explicitly; there is no package-level state.
type Store struct {
	mu        sync.Mutex
	registers map[rune]Entry

	// selected is the register chosen by a pending "x prefix, 0 if none.
	selected rune

	// defaultName is what an absent selection resolves to. Normally the
	// unnamed register; the clipboard config option can alias it to + or *.
	defaultName rune

	// clip provides system clipboard access for the * and + registers.
	clip clipboard.Provider
}

// PutOptions modifies a register write.
type PutOptions struct {
	// Force allows writes to read-only registers. Used only by the
	// engine's own bookkeeping, e.g. restoring a register after a
	// visual-mode replace-paste.
	Force bool

	// Operation, when set, runs the numbered-register bookkeeping after
	// the write completes, using the written content. Set by the
	// producing command (yank or delete), never by paste.
	Operation *OperationOptions
}

// GetOptions modifies a register read.
type GetOptions struct {
	// CursorCount is the caller's active cursor count. MultiText content
	// is returned whole only when its length matches; otherwise it is
	// joined into one string. Zero means single-cursor.
	CursorCount int
}

// NewStore creates an empty register store defaulting to the unnamed
// register.
func NewStore() *Store {
	return &Store{
		registers:   make(map[rune]Entry),
		defaultName: Unnamed,
	}
}

// SetClipboard sets the clipboard provider backing the * and + registers.
func (s *Store) SetClipboard(p clipboard.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clip = p
}

// SetDefaultRegister aliases the unnamed default to another register,
// mirroring Vim's 'clipboard' option. Only ", * and + are accepted.
func (s *Store) SetDefaultRegister(name rune) error {
	if name != Unnamed && !IsClipboardName(name) {
		return fmt.Errorf("%w: %q cannot be the default register", ErrInvalidRegisterName, string(name))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultName = name
	return nil
}

// DefaultRegister returns the register an unnamed operation writes to
// when no selection is pending.
func (s *Store) DefaultRegister() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultName
}

// Select records the register named by a pending "x prefix. It stays
// selected until ClearSelection.
func (s *Store) Select(name rune) error {
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidRegisterName, string(name))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = name
	return nil
}

// ClearSelection drops the pending register selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = 0
}

// Selected returns the register an unnamed operation targets: the pending
// selection if one exists, otherwise the configured default.
func (s *Store) Selected() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *Store) selectedLocked() rune {
	if s.selected != 0 {
		return s.selected
	}
	return s.defaultName
}

// Put stores content in a register.
//
// Black-hole writes are accepted and discarded. Read-only registers
// silently ignore the write unless opts.Force is set. Clipboard registers
// mirror the write to the clipboard provider before the local entry is
// updated; a provider failure aborts the write with the store unmodified.
// Uppercase names append to the lowercase register instead of overwriting.
func (s *Store) Put(ctx context.Context, name rune, c Content, mode Mode, opts PutOptions) error {
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

	if IsClipboardName(name) {
		if err := s.mirrorToClipboard(ctx, c); err != nil {
			return err
		}
	}

	s.mu.Lock()
	if IsAppendName(name) {
		s.appendLocked(Normalize(name), c, mode)
	} else {
		s.registers[name] = Entry{Content: c, Mode: mode}
	}
	s.mu.Unlock()

	if opts.Operation != nil {
		s.RecordOperation(c, mode, *opts.Operation)
	}
	return nil
}

// Get returns the entry stored in a register.
//
// A zero name resolves to the selected register. Clipboard registers read
// through the provider with line endings normalized; in a multicursor
// context the text is split per cursor when the segment count matches
// exactly. Reading never fails for a valid name: absent entries
// auto-vivify as empty character-wise.
func (s *Store) Get(ctx context.Context, name rune, opts GetOptions) (Entry, error) {
	if name == 0 {
		name = s.Selected()
	}
	if !IsValidName(name) {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidRegisterName, string(name))
	}
	name = Normalize(name)

	if name == BlackHole {
		return emptyEntry(), nil
	}

	count := opts.CursorCount
	if count <= 0 {
		count = 1
	}

	if IsClipboardName(name) && s.clipboardProvider() != nil {
		return s.getClipboard(ctx, name, count)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entryLocked(name)
	if mt, ok := e.Content.(MultiText); ok && len(mt) != count {
		e = Entry{Content: Text(strings.Join(mt, "\n")), Mode: e.Mode}
	}
	return e, nil
}

// Save snapshots the named registers and returns a restore function that
// writes the snapshots back, overwriting any writes that happened in
// between. This is the transaction primitive behind visual-mode
// replace-paste: snapshot, delete, paste, restore.
func (s *Store) Save(names ...rune) (restore func()) {
	s.mu.Lock()
	saved := make(map[rune]Entry, len(names))
	for _, n := range names {
		n = Normalize(n)
		if !IsValidName(n) || n == BlackHole {
			continue
		}
		saved[n] = s.entryLocked(n)
	}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for n, e := range saved {
			s.registers[n] = e
		}
	}
}

// Entries returns a copy of every materialized register entry keyed by
// name. Used by persistence and the inspector; clipboard contents are the
// locally mirrored values, not a fresh provider read.
func (s *Store) Entries() map[rune]Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[rune]Entry, len(s.registers))
	for n, e := range s.registers {
		out[n] = e
	}
	return out
}

// mirrorToClipboard pushes content to the clipboard provider, flattening
// multicursor content by joining with newlines and trimming the trailing
// newline. Recording content is not mirrored.
func (s *Store) mirrorToClipboard(ctx context.Context, c Content) error {
	p := s.clipboardProvider()
	if p == nil {
		return nil
	}
	var text string
	switch v := c.(type) {
	case Text:
		text = string(v)
	case MultiText:
		text = strings.TrimSuffix(strings.Join(v, "\n"), "\n")
	case Recording:
		return nil
	}
	return p.Copy(ctx, text)
}

// getClipboard reads a clipboard register through the provider. The mode
// comes from the locally mirrored entry when the text still matches it;
// externally produced text falls back to the trailing-newline heuristic.
func (s *Store) getClipboard(ctx context.Context, name rune, count int) (Entry, error) {
	p := s.clipboardProvider()
	raw, err := p.Paste(ctx)
	if err != nil {
		return Entry{}, err
	}
	text := normalizeLineEndings(raw)

	mode := ModeCharacterWise
	if strings.HasSuffix(text, "\n") {
		mode = ModeLineWise
	}
	s.mu.Lock()
	local := s.entryLocked(name)
	s.mu.Unlock()
	if t, ok := contentText(local.Content); ok && strings.TrimSuffix(t, "\n") == strings.TrimSuffix(text, "\n") {
		mode = local.Mode
	}

	if count > 1 {
		segments := strings.Split(text, "\n")
		if len(segments) == count {
			return Entry{Content: MultiText(segments), Mode: mode}, nil
		}
	}
	return Entry{Content: Text(text), Mode: mode}, nil
}

func (s *Store) clipboardProvider() clipboard.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clip
}

// appendLocked implements the uppercase append path on the lowercase
// target. Recordings cannot be concatenated; they replace the entry.
func (s *Store) appendLocked(name rune, c Content, mode Mode) {
	existing := s.entryLocked(name)
	exText, okExisting := contentText(existing.Content)
	addText, okAdd := contentText(c)
	if !okExisting || !okAdd {
		s.registers[name] = Entry{Content: c, Mode: mode}
		return
	}
	text, newMode := concatText(exText, existing.Mode, addText, mode)
	s.registers[name] = Entry{Content: Text(text), Mode: newMode}
}

// entryLocked returns the entry for name, materializing an empty
// character-wise entry on first access.
func (s *Store) entryLocked(name rune) Entry {
	e, ok := s.registers[name]
	if !ok {
		e = emptyEntry()
		s.registers[name] = e
	}
	return e
}
