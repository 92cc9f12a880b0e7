// Package phone normalizes WhatsApp sender identifiers into a canonical digits-only form.
package phone

import "strings"

// DefaultCountryCode is used when no country code is configured
const DefaultCountryCode = "55"

// Normalizer converts phone numbers and WhatsApp JIDs to a canonical form
type Normalizer struct {
	CountryCode string
}

// New makes a Normalizer for the given country code, DefaultCountryCode if empty
func New(countryCode string) Normalizer {
	cc := Digits(countryCode)
	if cc == "" {
		cc = DefaultCountryCode
	}
	return Normalizer{CountryCode: cc}
}

// Normalize strips the JID suffix and formatting and prepends the country code
// to national numbers (10 or 11 digits). A national number may itself start with
// the country digits, e.g. area code 55 in Brazil, so the prefix is not checked.
func (n Normalizer) Normalize(s string) string {
	if idx := strings.IndexByte(s, '@'); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.IndexByte(s, ':'); idx >= 0 { // device suffix, e.g. 5511999999999:12
		s = s[:idx]
	}
	d := Digits(s)
	if d == "" {
		return ""
	}
	if n.national(d) {
		return n.countryCode() + d
	}
	return d
}

// national reports whether d is a number without the country code.
// With a single-digit code 11 digits may already be code plus 10-digit number.
func (n Normalizer) national(d string) bool {
	cc := n.countryCode()
	switch len(d) {
	case 10:
		return true
	case 11:
		return !(len(cc)+10 == len(d) && strings.HasPrefix(d, cc))
	default:
		return false
	}
}

// Match compares two numbers tolerating the country code on either side
func (n Normalizer) Match(a, b string) bool {
	na, nb := n.Normalize(a), n.Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	cc := n.countryCode()
	return strings.TrimPrefix(na, cc) == strings.TrimPrefix(nb, cc)
}

func (n Normalizer) countryCode() string {
	if n.CountryCode == "" {
		return DefaultCountryCode
	}
	return n.CountryCode
}

// Digits returns only the decimal digits of s
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// JID returns the WhatsApp user JID for a number
func JID(number string) string {
	return Digits(number) + "@s.whatsapp.net"
}
