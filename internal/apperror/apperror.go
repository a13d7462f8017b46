// Package apperror maps validation failures to the inline messages the forms
// display.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired     = errors.New("is required")
	errInvalidEmail = errors.New("must be a valid email address")
)

var customErrors = map[string]error{
	"Form.Contact.FirstName.required": errRequired,
	"Form.Contact.LastName.required":  errRequired,
	"Form.Contact.Email.required":     errRequired,
	"Form.Contact.Email.emailformat":  errInvalidEmail,
	"Form.Contact.Phone.required":     errRequired,
	"Credentials.Email.required":      errRequired,
	"Credentials.Password.required":   errRequired,
}

// CustomValidationError converts validator errors into a standardized
// field-to-message list.
func CustomValidationError(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors

	switch {
	case errors.As(err, &validationErr):
		for _, e := range validationErr {
			field := e.StructNamespace()
			key := field + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", field)
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}

			errList = append(errList, map[string]string{e.Field(): errMsg})
		}
	}
	return errList
}
