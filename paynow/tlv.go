package paynow

import "fmt"

// maxFieldLen is the widest value a two-digit decimal length prefix can carry.
const maxFieldLen = 99

// EncodeField encodes a single tag-length-value field: the two-character tag,
// the value's character count as two zero-padded decimal digits, then the
// value verbatim.
func EncodeField(tag, value string) (string, error) {
	if len(tag) != 2 {
		return "", fmt.Errorf("tag %q must be exactly two characters", tag)
	}
	if len(value) > maxFieldLen {
		return "", fmt.Errorf("tag %s value is %d characters: %w", tag, len(value), ErrFieldTooLong)
	}
	return fmt.Sprintf("%s%02d%s", tag, len(value), value), nil
}

// clip hard-truncates s to at most n characters. Fields with a lossy
// truncation policy (merchant name, bill reference) clip instead of failing.
func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
