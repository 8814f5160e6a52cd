package validation

import (
	"regexp"
)

// Validation rule patterns and bounds
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Password min length
	PasswordMinLength = 6

	// Graduation year bounds
	GraduationYearMin = 1950
	GraduationYearMax = 2030
)

var emailRegex = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidGraduationYear reports whether the year sits inside the accepted range
func IsValidGraduationYear(year int) bool {
	return year >= GraduationYearMin && year <= GraduationYearMax
}
