package dto

import "strings"

// trimToNil trims s and converts empty results to nil, so optional text
// columns store NULL instead of empty strings.
func trimToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func upperSigla(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
