package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},

		// Invalid - empty/whitespace
		{"", false},
		{"   ", false},

		// Invalid - missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{"user@localhost", false}, // no dot in domain
		{"user@example.", false},  // trailing dot
		{"user@.com", false},      // dot-led domain

		// Invalid - multiple @
		{"user@@example.com", false},
		{"user@foo@example.com", false},

		// Invalid - whitespace inside
		{"user @example.com", false},
		{"user@ example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
