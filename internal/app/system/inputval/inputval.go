// Package inputval validates request fields before they reach a store.
package inputval

import "strings"

// IsValidEmail checks the basic local@domain.tld shape: exactly one "@",
// a non-empty local part, a domain containing at least one dot, and no
// whitespace anywhere. It is intentionally a shape check, not an RFC 5322
// parser; the unique index is the real authority on identity.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}

	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}

	domain := email[at+1:]
	if domain == "" {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return true
}
