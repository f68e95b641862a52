package presenca

import "strings"

const cpfDigits = 11

// FormatCPF applies the progressive "000.000.000-00" mask to whatever digits s contains.
// Non-digits are dropped and digits beyond the eleventh are truncated, so formatting an
// already formatted value returns it unchanged.
func FormatCPF(s string) string {
	digits := make([]byte, 0, cpfDigits)
	for i := 0; i < len(s) && len(digits) < cpfDigits; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}

	var b strings.Builder
	for i, d := range digits {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d)
	}
	return b.String()
}
