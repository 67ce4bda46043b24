package validator

import "testing"

type registrationForm struct {
	FirstName string `validate:"required,latinname"`
	PESEL     string `validate:"required,pesel"`
	PWZ       string `validate:"omitempty,pwz"`
	Phone     string `validate:"omitempty,phone"`
}

func TestValidate_CustomTagsPass(t *testing.T) {
	v := NewValidator()

	form := registrationForm{
		FirstName: "Anna",
		PESEL:     "44051401359",
		PWZ:       "5425740",
		Phone:     "+48123456789",
	}
	if err := v.Validate(form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidate_CustomTagsFail(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name  string
		form  registrationForm
		field string
	}{
		{
			"bad pesel checksum",
			registrationForm{FirstName: "Anna", PESEL: "44051401358"},
			"PESEL",
		},
		{
			"bad pwz checksum",
			registrationForm{FirstName: "Anna", PESEL: "44051401359", PWZ: "5425741"},
			"PWZ",
		},
		{
			"multi-word name",
			registrationForm{FirstName: "Anna Maria", PESEL: "44051401359"},
			"FirstName",
		},
		{
			"short phone",
			registrationForm{FirstName: "Anna", PESEL: "44051401359", Phone: "12345"},
			"Phone",
		},
	}

	for _, c := range cases {
		err := v.Validate(c.form)
		if err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
		msgs := v.FormatValidationErrors(err)
		if _, ok := msgs[c.field]; !ok {
			t.Fatalf("%s: expected a message for field %s, got %v", c.name, c.field, msgs)
		}
	}
}

func TestFormatValidationErrors_RequiredMessage(t *testing.T) {
	v := NewValidator()

	err := v.Validate(registrationForm{})
	if err == nil {
		t.Fatalf("expected validation error for empty form")
	}

	msgs := v.FormatValidationErrors(err)
	if msgs["FirstName"] != "FirstName is required" {
		t.Fatalf("unexpected message: %q", msgs["FirstName"])
	}
}
