// Package normalize holds the canonical-form helpers applied to user
// input before it is stored or matched against the database.
package normalize

import "strings"

// Email trims surrounding whitespace and lowercases the address.
// Emails are matched case-insensitively everywhere, so every write and
// every lookup must pass through here.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Username trims surrounding whitespace. Usernames are matched exactly
// as typed (the unique index is case-sensitive), so only the obviously
// accidental whitespace is removed.
func Username(s string) string {
	return strings.TrimSpace(s)
}
