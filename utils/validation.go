package utils

import "strings"

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, v := range constantValues {
		if v == value {
			return true
		}
	}
	return false
}

// NormalizeEnum uppercases API input so the business logic only ever compares
// one casing of a status or slot string.
func NormalizeEnum(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
