package lei

import "fmt"

// mod97 reduces s modulo 97 per ISO 7064 MOD 97-10: digits keep their value,
// letters expand to two digits (A=10 .. Z=35). The reduction is streamed one
// character at a time, so no big-integer arithmetic is needed. Characters
// outside A-Z0-9 are ignored; callers must validate the alphabet first.
func mod97(s string) int {
	r := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			// Folding both digits of the letter expansion in one step.
			r = (r*100 + int(c-'A') + 10) % 97
		}
	}
	return r
}

// checkDigits computes the two check digit characters for an 18-character
// payload: 98 minus the remainder of payload*100 modulo 97. The result is
// always in 02..98, zero-padded to two characters.
func checkDigits(payload string) string {
	r := (mod97(payload) * 100) % 97
	return fmt.Sprintf("%02d", 98-r)
}
