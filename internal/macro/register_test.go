package macro

import "testing"

func TestIsValidRegister(t *testing.T) {
	tests := []struct {
		name  string
		r     rune
		valid bool
	}{
		{"lowercase a", 'a', true},
		{"lowercase z", 'z', true},
		{"uppercase A", 'A', true},
		{"uppercase Z", 'Z', true},
		{"digit 0", '0', true},
		{"digit 9", '9', true},
		{"colon", ':', true},
		{"unnamed", '"', false},
		{"blackhole", '_', false},
		{"clipboard", '+', false},
		{"space", ' ', false},
		{"unicode", 'ä', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidRegister(tt.r); got != tt.valid {
				t.Errorf("IsValidRegister(%c) = %v, want %v", tt.r, got, tt.valid)
			}
		})
	}
}

func TestNormalizeRegister(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want rune
	}{
		{"lowercase passes through", 'q', 'q'},
		{"uppercase lowers", 'Q', 'q'},
		{"digit passes through", '5', '5'},
		{"colon passes through", ':', ':'},
		{"invalid returns zero", '%', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRegister(tt.r); got != tt.want {
				t.Errorf("NormalizeRegister(%c) = %c, want %c", tt.r, got, tt.want)
			}
		})
	}
}
