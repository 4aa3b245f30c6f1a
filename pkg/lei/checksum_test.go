package lei

import "testing"

func TestMod97(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"1", 1},
		{"97", 0},
		{"98", 1},
		{"A", 10},
		{standard, 1},
		{"YZ83GD8L7GG84979J517", 2},
	}

	for _, tt := range tests {
		if got := mod97(tt.input); got != tt.want {
			t.Errorf("mod97(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

const standard = "YZ83GD8L7GG84979J516"

func TestCheckDigits(t *testing.T) {
	tests := []struct {
		payload string
		want    string
	}{
		{"YZ83GD8L7GG84979J5", "16"},
		{"635400B4JJBON4TCHF", "02"},
		// 98 - (payload*100 mod 97) ranges over 02..98, so the canonical
		// pair for these payloads is 97/98 even though the codes also
		// circulate with the congruent pairs 00/01.
		{"315700100000000452", "97"},
		{"315700WH3YMKHCVYW2", "98"},
	}

	for _, tt := range tests {
		if got := checkDigits(tt.payload); got != tt.want {
			t.Errorf("checkDigits(%q) = %q, want %q", tt.payload, got, tt.want)
		}
	}
}
