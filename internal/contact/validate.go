package contact

import "regexp"

// EmailPattern is the full-match pattern an email must satisfy to be stored.
var EmailPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*@[A-Za-z]+\.[a-z]{2,3}$`)

// PhonePattern is the full-match pattern for a country code plus number.
// Whitespace between the digit groups is allowed.
var PhonePattern = regexp.MustCompile(`^(?:\+?[0-9]{1,3})?\s*[0-9]{3}\s*[0-9]{3}\s*[0-9]{4}$`)

// ValidEmail reports whether s is an acceptable email address.
func ValidEmail(s string) bool {
	return EmailPattern.MatchString(s)
}

// ValidPhone reports whether s is an acceptable phone number.
func ValidPhone(s string) bool {
	return PhonePattern.MatchString(s)
}
