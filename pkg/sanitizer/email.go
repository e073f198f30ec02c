package sanitizer

import "strings"

var normalizeEmail = Compose(RemoveControlChars, NFC, Trim, ToLower)

// NormalizeEmail canonicalizes an address for storage and comparison: control
// characters are removed, Unicode is NFC composed, surrounding space trimmed
// and everything lower-cased. Invalid input is normalized the same way and
// left for validation to reject.
func NormalizeEmail(email string) string {
	return normalizeEmail(email)
}

func ExtractEmailDomain(email string) string {
	_, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok {
		return ""
	}
	return strings.ToLower(domain)
}

// MaskEmail keeps the first character of the local part and the domain:
// "john@example.com" becomes "j***@example.com". Input without "@" is
// fully masked.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	runes := []rune(local)
	if len(runes) <= 1 {
		return "*@" + domain
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}
