// Package validation builds the validator shared by all handlers.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"tuiter/internal/payment"
)

// Loose international phone pattern: optional plus, optional country code,
// six to fourteen digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{1,3}?[0-9]{6,14}$`)

// New returns a validator with the custom field kinds registered: "phone" for
// the order form's phone numbers and "card_number" for payment cards.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
		_, err := payment.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Messages flattens a validation error into a field -> message map suitable
// for a 400 response body.
func Messages(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = err.Error()
		return out
	}
	for _, e := range verrs {
		out[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return out
}
