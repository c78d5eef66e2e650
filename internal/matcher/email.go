package matcher

import "regexp"

// emailPattern: word runs split by single '.' or '-', '@', then a domain of word runs split by '.' or '-'
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]\w+)*$`)

// ValidEmail reports whether the whole token is an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
