package validate

import "regexp"

var phoneRe = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// IsPhone reports whether s looks like a dialable phone number
// (optional leading +, 9 to 15 digits).
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}
