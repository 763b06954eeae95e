package validators

import (
	"regexp"
	"time"
)

var (
	// Letters (Latin or Hebrew), spaces, hyphen, apostrophe, 2-50 chars.
	namePattern = regexp.MustCompile(`^[A-Za-z\x{0590}-\x{05FF}\s'-]{2,50}$`)

	// Optional leading +, then 7-15 digits.
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	birthdayShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidBirthday accepts real ISO calendar dates only: the value must have
// the YYYY-MM-DD shape and parse as an actual date, so 2024-02-29 passes and
// 2024-13-40 or 2023-02-29 do not.
func IsValidBirthday(birthday string) bool {
	if !birthdayShape.MatchString(birthday) {
		return false
	}
	_, err := time.Parse("2006-01-02", birthday)
	return err == nil
}
