package macro

import "unicode"

// Register validation constants.
const (
	// MinLetterRegister is the first valid letter register.
	MinLetterRegister = 'a'
	// MaxLetterRegister is the last valid letter register.
	MaxLetterRegister = 'z'
	// MinDigitRegister is the first valid digit register.
	MinDigitRegister = '0'
	// MaxDigitRegister is the last valid digit register.
	MaxDigitRegister = '9'
	// CommandRegister replays the last command line when used as a macro.
	CommandRegister = ':'
)

// IsValidRegister returns true if r names a valid macro register.
// Valid macro registers are letters (a-z, A-Z), digits (0-9), and ':'.
// This set is deliberately broader than the general register charset.
func IsValidRegister(r rune) bool {
	return IsLetterRegister(r) || IsAppendRegister(r) ||
		IsDigitRegister(r) || r == CommandRegister
}

// IsLetterRegister returns true if r is a lowercase letter register (a-z).
func IsLetterRegister(r rune) bool {
	return r >= MinLetterRegister && r <= MaxLetterRegister
}

// IsDigitRegister returns true if r is a digit register (0-9).
func IsDigitRegister(r rune) bool {
	return r >= MinDigitRegister && r <= MaxDigitRegister
}

// IsAppendRegister returns true if r is an uppercase letter (A-Z).
// In Vim, recording to an uppercase register appends to the lowercase one.
func IsAppendRegister(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// NormalizeRegister converts a register to its canonical form.
// Uppercase letters are converted to lowercase. Invalid registers return 0.
func NormalizeRegister(r rune) rune {
	if IsAppendRegister(r) {
		return unicode.ToLower(r)
	}
	if IsValidRegister(r) {
		return r
	}
	return 0
}
