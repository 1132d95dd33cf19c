package register

import "unicode"

// Special register names.
const (
	// Unnamed is the default register (").
	Unnamed = '"'

	// ClipboardPrimary is the primary-selection clipboard register (*).
	ClipboardPrimary = '*'

	// ClipboardPlus is the system clipboard register (+).
	ClipboardPlus = '+'

	// LastInserted holds the last inserted text (.). Read-only.
	LastInserted = '.'

	// SmallDelete holds the last delete that stayed within a line (-).
	SmallDelete = '-'

	// LastSearch holds the last search pattern (/). Read-only.
	LastSearch = '/'

	// LastCommand holds the last command line (:). Read-only.
	LastCommand = ':'

	// FileName holds the current file path (%). Read-only.
	FileName = '%'

	// AlternateFile holds the alternate file path (#). Read-only.
	AlternateFile = '#'

	// BlackHole discards writes and reads empty (_).
	BlackHole = '_'

	// LastYank is numbered register 0, the most recent unnamed yank.
	LastYank = '0'
)

// IsValidName returns true if r names a valid register.
// The charset is a public contract: [a-z], [A-Z], [0-9], and " * + . - / : % # _.
func IsValidName(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == Unnamed, r == ClipboardPrimary, r == ClipboardPlus:
		return true
	case r == LastInserted, r == SmallDelete, r == LastSearch:
		return true
	case r == LastCommand, r == FileName, r == AlternateFile:
		return true
	case r == BlackHole:
		return true
	default:
		return false
	}
}

// IsNamedRegister returns true if r is a lowercase named register (a-z).
func IsNamedRegister(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsAppendName returns true if r is an uppercase append target (A-Z).
func IsAppendName(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsNumberedName returns true if r is a numbered register (0-9).
func IsNumberedName(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsClipboardName returns true if r is clipboard-backed (* or +).
func IsClipboardName(r rune) bool {
	return r == ClipboardPrimary || r == ClipboardPlus
}

// IsReadOnlyName returns true for registers that reject writes from the
// general put path (. % : # /).
func IsReadOnlyName(r rune) bool {
	switch r {
	case LastInserted, FileName, LastCommand, AlternateFile, LastSearch:
		return true
	}
	return false
}

// Normalize maps append names to their lowercase target; all other names
// pass through unchanged.
func Normalize(r rune) rune {
	if IsAppendName(r) {
		return unicode.ToLower(r)
	}
	return r
}
