// Package contact validates lead-capture submissions and forwards them to
// the external form-processing service.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Submission is a contact form payload. Fields are validated and forwarded
// exactly as submitted; Message is optional and unconstrained.
type Submission struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"min=1"`
	Message string `json:"message"`
}

// FieldError is a user-facing message for one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every invalid field in form order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Messages returns the first message per field.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

// messages maps field and failed rule to the text shown under the input.
var messages = map[string]map[string]string{
	"name": {
		"min": "Name must be at least 2 characters",
	},
	"email": {
		"required": "Please enter a valid email address",
		"email":    "Please enter a valid email address",
	},
	"company": {
		"min": "Organization is required",
	},
}

// Validator checks submissions against the contact form rules.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a validator reporting fields by their JSON names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate returns a *ValidationError when s breaks any rule.
func (v *Validator) Validate(s Submission) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate submission: %w", err)
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return ve
}
