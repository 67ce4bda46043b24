package validator

import (
	"time"

	"clinic-scheduling-api/internal/validation"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator with the clinic-specific tags registered:
// pesel, pwz, phone, latinname and futuredate.
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("pesel", func(fl validator.FieldLevel) bool {
		_, err := validation.ValidateNationalID(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("pwz", func(fl validator.FieldLevel) bool {
		_, err := validation.ValidateLicenseNumber(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		_, err := validation.ValidatePhoneNumber(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("latinname", func(fl validator.FieldLevel) bool {
		_, err := validation.ValidatePersonName(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse("2006-01-02", fl.Field().String())
		if err != nil {
			return false
		}
		_, err = validation.ValidateFutureDate(d, time.Now())
		return err == nil
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "oneof":
				errors[field] = field + " must be one of " + e.Param()
			case "pesel":
				errors[field] = field + " must be a valid PESEL number"
			case "pwz":
				errors[field] = field + " must be a valid PWZ number"
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "latinname":
				errors[field] = field + " must be a single word of latin letters"
			case "futuredate":
				errors[field] = field + " must be today or a future date"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
