package validation

import (
	"testing"
	"time"
)

func TestValidatePersonName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"simple", "Anna", nil},
		{"mixed case", "McGregor", nil},
		{"empty", "", ErrEmptyField},
		{"only spaces", "   ", ErrEmptyField},
		{"inner space", "Anna Maria", ErrNonLatinName},
		{"digit", "Anna2", ErrNonLatinName},
		{"diacritic", "Łukasz", ErrNonLatinName},
		{"hyphen", "Anne-Marie", ErrNonLatinName},
	}

	for _, c := range cases {
		got, err := ValidatePersonName(c.in)
		if err != c.wantErr {
			t.Fatalf("%s: ValidatePersonName(%q) error = %v, want %v", c.name, c.in, err, c.wantErr)
		}
		if err == nil && got != c.in {
			t.Fatalf("%s: got %q, want %q back", c.name, got, c.in)
		}
	}
}

func TestValidateLicenseNumber_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5425740", 5425740},
		{"3123456", 3123456},
	}

	for _, c := range cases {
		got, err := ValidateLicenseNumber(c.in)
		if err != nil {
			t.Fatalf("ValidateLicenseNumber(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ValidateLicenseNumber(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestValidateLicenseNumber_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "", ErrWrongLength},
		{"too short", "542574", ErrWrongLength},
		{"too long", "54257401", ErrWrongLength},
		{"leading zero", "0425740", ErrWrongLength},
		{"non-digit", "54257a0", ErrWrongLength},
		{"bad check digit", "5425741", ErrInvalidChecksum},
		{"flipped digit", "5425730", ErrInvalidChecksum},
	}

	for _, c := range cases {
		if _, err := ValidateLicenseNumber(c.in); err != c.wantErr {
			t.Fatalf("%s: ValidateLicenseNumber(%q) error = %v, want %v", c.name, c.in, err, c.wantErr)
		}
	}
}

func TestValidateNationalID_Valid(t *testing.T) {
	got, err := ValidateNationalID("44051401359")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "44051401359" {
		t.Fatalf("got %q, want the input back", got)
	}
}

func TestValidateNationalID_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "", ErrInvalidFormat},
		{"too short", "4405140135", ErrInvalidFormat},
		{"too long", "440514013590", ErrInvalidFormat},
		{"non-digit", "4405140135x", ErrInvalidFormat},
		{"bad checksum", "44051401358", ErrInvalidChecksum},
	}

	for _, c := range cases {
		if _, err := ValidateNationalID(c.in); err != c.wantErr {
			t.Fatalf("%s: ValidateNationalID(%q) error = %v, want %v", c.name, c.in, err, c.wantErr)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"nine digits", "123456789", nil},
		{"eleven digits", "48123456789", nil},
		{"plus prefix", "+48123456789", nil},
		{"plus and one", "+112345678901", nil},
		{"too short", "12345678", ErrInvalidFormat},
		{"too long", "4812345678901", ErrInvalidFormat},
		{"letters", "phone123456", ErrInvalidFormat},
		{"spaces", "48 123 456 789", ErrInvalidFormat},
	}

	for _, c := range cases {
		got, err := ValidatePhoneNumber(c.in)
		if err != c.wantErr {
			t.Fatalf("%s: ValidatePhoneNumber(%q) error = %v, want %v", c.name, c.in, err, c.wantErr)
		}
		if err == nil && got != c.in {
			t.Fatalf("%s: got %q, want %q back", c.name, got, c.in)
		}
	}
}

func TestValidateFutureDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	if _, err := ValidateFutureDate(now, now); err != nil {
		t.Fatalf("today must be accepted, got %v", err)
	}
	// Earlier the same day still counts as today.
	morning := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if _, err := ValidateFutureDate(morning, now); err != nil {
		t.Fatalf("earlier hour today must be accepted, got %v", err)
	}
	if _, err := ValidateFutureDate(now.AddDate(0, 0, 7), now); err != nil {
		t.Fatalf("next week must be accepted, got %v", err)
	}
	if _, err := ValidateFutureDate(now.AddDate(0, 0, -1), now); err != ErrDateInPast {
		t.Fatalf("yesterday: expected ErrDateInPast, got %v", err)
	}
}
