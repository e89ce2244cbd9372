package bootstrap

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// Намеренно упрощенная проверка: непустой хвост, '@', точка в домене.
// Полный RFC 5322 здесь не нужен — письмо все равно не отправляется.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsValidEmail(s string) bool {
	return s != "" && len(s) <= 255 && emailPattern.MatchString(s)
}

// Границы длины считаем в символах, не в байтах: вьетнамское имя
// занимает в UTF-8 по 2-3 байта на букву.
func IsValidPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 6 && n <= 128
}

func IsValidFullName(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= 100
}

// ValidateCandidate проверяет поля в порядке email -> password -> fullName
// и останавливается на первом невалидном.
func ValidateCandidate(c Candidate) error {
	if !IsValidEmail(c.Email) {
		return errors.New("a valid email address is required")
	}
	if !IsValidPassword(c.Password) {
		return errors.New("password must be between 6 and 128 characters")
	}
	if c.FullName != "" && !IsValidFullName(c.FullName) {
		return errors.New("full name must be between 1 and 100 characters")
	}
	return nil
}
