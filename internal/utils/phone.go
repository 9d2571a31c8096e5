package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigits     = regexp.MustCompile(`\D`)
	positiveReply = regexp.MustCompile(`(?i)^(yes|y|confirm|ok|sure|accept|agreed|yep|yeah|ya|yup|fine|positive|affirmative|will do)`)
)

// DigitsOnly strips everything but ASCII digits
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// FormatPhoneNumber normalizes a phone number to E.164-like form. Numbers
// already starting with "+" are returned trimmed but otherwise untouched,
// ten-digit numbers get defaultCountryCode and anything else gets a bare "+".
func FormatPhoneNumber(phone, defaultCountryCode string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}

	digits := DigitsOnly(phone)
	if len(digits) == 10 {
		return defaultCountryCode + digits
	}
	return "+" + digits
}

// LastDigits returns the trailing n digits of phone, or all of them when shorter
func LastDigits(phone string, n int) string {
	digits := DigitsOnly(phone)
	if len(digits) <= n {
		return digits
	}
	return digits[len(digits)-n:]
}

// IsPositiveReply reports whether an SMS reply confirms availability
func IsPositiveReply(text string) bool {
	return positiveReply.MatchString(strings.TrimSpace(text))
}
