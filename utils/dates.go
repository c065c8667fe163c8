package utils

import "regexp"

var (
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// IsValidDate reports whether s matches the YYYY-MM-DD pattern.
func IsValidDate(s string) bool {
	return dateRegex.MatchString(s)
}

// IsValidMonth reports whether s matches the YYYY-MM pattern.
func IsValidMonth(s string) bool {
	return monthRegex.MatchString(s)
}

// SplitDate splits a YYYY-MM-DD date into its YYYY-MM month key and
// zero-padded DD day key. The caller must validate the date first.
func SplitDate(date string) (month, day string) {
	return date[:7], date[8:]
}
