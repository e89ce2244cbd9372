package bootstrap

import (
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{"a@b.co", true},
		{"admin@example.com", true},
		{"not-an-email", false},
		{"", false},
		{"a b@example.com", false},
		{"a@b", false},
		{strings.Repeat("a", 256) + "@example.com", false},
	}

	for _, c := range cases {
		if result := IsValidEmail(c.input); result != c.expected {
			t.Errorf("IsValidEmail(%q) == %v, want %v", c.input, result, c.expected)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if !IsValidPassword(strings.Repeat("x", 6)) {
		t.Error("length 6 should be valid")
	}
	if !IsValidPassword(strings.Repeat("x", 128)) {
		t.Error("length 128 should be valid")
	}
	if IsValidPassword(strings.Repeat("x", 5)) {
		t.Error("length 5 should NOT be valid")
	}
	if IsValidPassword(strings.Repeat("x", 129)) {
		t.Error("length 129 should NOT be valid")
	}
	if !IsValidPassword(strings.Repeat("ữ", 6)) {
		t.Error("6 multi-byte characters should be a valid password")
	}
}

func TestIsValidFullName(t *testing.T) {
	if !IsValidFullName("A") {
		t.Error("length 1 should be valid")
	}
	if !IsValidFullName(strings.Repeat("x", 100)) {
		t.Error("length 100 should be valid")
	}
	if IsValidFullName("") {
		t.Error("empty name should NOT be valid")
	}
	if IsValidFullName(strings.Repeat("x", 101)) {
		t.Error("length 101 should NOT be valid")
	}
	// 60 вьетнамских букв — это 180 байт, но только 60 символов
	if !IsValidFullName(strings.Repeat("ữ", 60)) {
		t.Error("a multi-byte name within 100 characters should be valid")
	}
	if IsValidFullName(strings.Repeat("ữ", 101)) {
		t.Error("101 multi-byte characters should NOT be valid")
	}
}

func TestValidateCandidateOrder(t *testing.T) {
	// Невалидны все поля — должна всплыть ошибка email
	err := ValidateCandidate(Candidate{Email: "bad", Password: "123", FullName: strings.Repeat("x", 101)})
	if err == nil || !strings.Contains(err.Error(), "email") {
		t.Errorf("expected email error first, got %v", err)
	}

	err = ValidateCandidate(Candidate{Email: "a@b.co", Password: "123", FullName: strings.Repeat("x", 101)})
	if err == nil || !strings.Contains(err.Error(), "password") {
		t.Errorf("expected password error second, got %v", err)
	}

	err = ValidateCandidate(Candidate{Email: "a@b.co", Password: "secret1", FullName: strings.Repeat("x", 101)})
	if err == nil || !strings.Contains(err.Error(), "full name") {
		t.Errorf("expected full name error last, got %v", err)
	}

	// fullName опционален
	if err := ValidateCandidate(Candidate{Email: "a@b.co", Password: "secret1"}); err != nil {
		t.Errorf("candidate without full name should be valid, got %v", err)
	}
}
