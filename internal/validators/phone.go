package validators

import "strings"

// IsPhoneValid accepts the loose phone formats clients type into the
// booking form: digits with optional +, spaces, dashes and parentheses,
// at least 8 digits total.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+':
			if i != 0 {
				return false
			}
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= 8
}
