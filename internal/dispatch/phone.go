package dispatch

import (
	"strings"
)

// DefaultCountryCode is the calling code applied to national numbers.
const DefaultCountryCode = "237"

// FormatPhoneNumber normalises a recipient for the modem. National numbers get countryCode.
//
//	"+237 677-00-00-00" -> "+237677000000"
//	"237677000000"      -> "+237677000000"
//	"0677000000"        -> "+237677000000"
//	"677000000"         -> "+237677000000"
func FormatPhoneNumber(raw, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case strings.HasPrefix(cleaned, "+"):
		return cleaned
	case strings.HasPrefix(cleaned, countryCode):
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "0") && len(cleaned) >= 10:
		return "+" + countryCode + cleaned[1:]
	case len(cleaned) == 9:
		return "+" + countryCode + cleaned
	default:
		return cleaned
	}
}

// validNumber rejects what the modem would refuse outright.
func validNumber(n string) bool {
	digits := strings.TrimPrefix(n, "+")
	if len(digits) < 3 {
		return false
	}
	return !strings.Contains(digits, "+")
}

// MaskPhoneNumber hides all but the last 4 digits: "+237677001234" -> "+********1234".
func MaskPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	if strings.HasPrefix(phone, "+") {
		if len(phone) <= 5 {
			return "+" + strings.Repeat("*", len(phone)-1)
		}
		return "+" + strings.Repeat("*", len(phone)-5) + phone[len(phone)-4:]
	}

	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
