package models

import "strings"

const localNumberLength = 10

// CompactMobile normalises a phone number. Non-digits are dropped; up to ten
// digits are returned as is, longer input keeps the last ten as the local
// number and prefixes the rest as a country code: "+<country>-<local>".
func CompactMobile(input string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)

	if len(digits) <= localNumberLength {
		return digits
	}

	split := len(digits) - localNumberLength
	return "+" + digits[:split] + "-" + digits[split:]
}
