// Package validate holds the input predicates applied to contact fields
// before any network call is issued. All checks are pure and deterministic:
// validating the same string twice always yields the same answer.
package validate

import "regexp"

// Field identifies which contact field a raw input string is meant for.
type Field int

const (
	FieldName Field = iota
	FieldPhone
	FieldEmail
	FieldAddress
)

var (
	// Letters (ASCII plus the Turkish set) and whitespace only, non-empty.
	nameRe = regexp.MustCompile(`^[A-Za-zÇĞİÖŞÜçğıöşü\s]+$`)

	// +<country code> DDD DDD DD DD with exact single-space groupings.
	// The country code allow-list is fixed.
	phoneRe = regexp.MustCompile(`^\+(?:90|1|44|49|33|34) \d{3} \d{3} \d{2} \d{2}$`)

	// local@domain with a fixed allow-list of top-level domains.
	emailRe = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.(com|net|org|edu|gov|io|co)$`)
)

// Name reports whether s is a valid contact name.
func Name(s string) bool { return nameRe.MatchString(s) }

// Phone reports whether s is a valid phone number in normalized
// international format, e.g. "+90 532 111 22 33".
func Phone(s string) bool { return phoneRe.MatchString(s) }

// Email reports whether s is a valid email address.
func Email(s string) bool { return emailRe.MatchString(s) }

// Address reports whether s is a valid address. Addresses are
// unconstrained, so this always passes.
func Address(s string) bool { return true }

// Check validates s for the given field kind.
func Check(f Field, s string) bool {
	switch f {
	case FieldName:
		return Name(s)
	case FieldPhone:
		return Phone(s)
	case FieldEmail:
		return Email(s)
	default:
		return Address(s)
	}
}

// ErrorMessage returns the user-facing message shown when input for the
// field fails validation.
func ErrorMessage(f Field) string {
	switch f {
	case FieldName:
		return "invalid name: use letters and spaces only"
	case FieldPhone:
		return "invalid phone: expected format +90 123 456 78 90"
	case FieldEmail:
		return "invalid email: expected format someone@example.com"
	default:
		return "invalid input"
	}
}
