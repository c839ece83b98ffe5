package validation

import (
	"github.com/go-playground/validator/v10"

	"blogql/internal/apperrors"
)

var validate = validator.New()

// UserInput checks registration input. All violations are collected; an
// empty slice means the input is valid.
func UserInput(email, password string) []apperrors.FieldError {
	var errs []apperrors.FieldError

	if err := validate.Var(email, "required,email"); err != nil {
		errs = append(errs, apperrors.FieldError{
			Field:   "email",
			Message: "Email is not valid",
		})
	}

	if err := validate.Var(password, "required,min=5"); err != nil {
		errs = append(errs, apperrors.FieldError{
			Field:   "password",
			Message: "Password is too short",
		})
	}

	return errs
}

// PostInput checks post title and content. Both must be at least 5
// characters; violations accumulate.
func PostInput(title, content string) []apperrors.FieldError {
	var errs []apperrors.FieldError

	if err := validate.Var(title, "required,min=5"); err != nil {
		errs = append(errs, apperrors.FieldError{
			Field:   "title",
			Message: "Title is invalid. Must be minimum 5 char long",
		})
	}

	if err := validate.Var(content, "required,min=5"); err != nil {
		errs = append(errs, apperrors.FieldError{
			Field:   "content",
			Message: "Content is invalid. Must be minimum 5 char long",
		})
	}

	return errs
}
