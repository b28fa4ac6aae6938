package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidEmpID(t *testing.T) {
	valid := []string{"AT0198", "E1-2024", "abc"}
	invalid := []string{"", "ab", "emp id", "E1@x", "0123456789012345678901"}
	for _, id := range valid {
		if !IsValidEmpID(id) {
			t.Errorf("IsValidEmpID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmpID(id) {
			t.Errorf("IsValidEmpID(%q) = true, want false", id)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g23e4567-e89b-12d3-a456-426614174000", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidResetToken(t *testing.T) {
	valid := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	if !IsValidResetToken(valid) {
		t.Errorf("IsValidResetToken(%q) = false, want true", valid)
	}
	invalid := []string{"", "abcd", valid + "00", "z" + valid[1:]}
	for _, token := range invalid {
		if IsValidResetToken(token) {
			t.Errorf("IsValidResetToken(%q) = true, want false", token)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidMonthName(t *testing.T) {
	if !IsValidMonthName("January") {
		t.Error("IsValidMonthName(January) = false, want true")
	}
	for _, m := range []string{"january", "Jan", "", "Smarch"} {
		if IsValidMonthName(m) {
			t.Errorf("IsValidMonthName(%q) = true, want false", m)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("short") {
		t.Error("IsValidPassword(short) = true, want false")
	}
	if !IsValidPassword("12345678") {
		t.Error("IsValidPassword(12345678) = false, want true")
	}
}
