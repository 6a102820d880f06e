package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
		Message: "We would like a demo.",
	}
}

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(validSubmission()))

	noMessage := validSubmission()
	noMessage.Message = ""
	assert.NoError(t, v.Validate(noMessage), "message is optional")
}

func TestValidator_FieldRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(*Submission)
		field  string
		want   string
	}{
		{"short name", func(s *Submission) { s.Name = "A" }, "name", "Name must be at least 2 characters"},
		{"empty name", func(s *Submission) { s.Name = "" }, "name", "Name must be at least 2 characters"},
		{"empty email", func(s *Submission) { s.Email = "" }, "email", "Please enter a valid email address"},
		{"bad email", func(s *Submission) { s.Email = "not-an-email" }, "email", "Please enter a valid email address"},
		{"empty company", func(s *Submission) { s.Company = "" }, "company", "Organization is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)

			err := v.Validate(s)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Fields, 1)
			assert.Equal(t, FieldError{Field: tt.field, Message: tt.want}, ve.Fields[0])
		})
	}
}

func TestValidator_ReportsAllFieldsInOrder(t *testing.T) {
	err := NewValidator().Validate(Submission{Name: "x", Email: "nope"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	fields := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		fields[i] = f.Field
	}
	assert.Equal(t, []string{"name", "email", "company"}, fields)
	assert.Contains(t, err.Error(), "company: Organization is required")
}

func TestValidator_AcceptsAsSubmitted(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"long message", func(s *Submission) { s.Message = strings.Repeat("x", 6000) }},
		{"long name", func(s *Submission) { s.Name = strings.Repeat("n", 201) }},
		{"long company", func(s *Submission) { s.Company = strings.Repeat("c", 201) }},
		{"two characters with a space", func(s *Submission) { s.Name = "a " }},
		{"two runes", func(s *Submission) { s.Name = "Zé" }},
		{"single character company", func(s *Submission) { s.Company = "Q" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)
			assert.NoError(t, v.Validate(s))
		})
	}
}

func TestValidationError_Messages(t *testing.T) {
	ve := &ValidationError{Fields: []FieldError{
		{Field: "name", Message: "first"},
		{Field: "name", Message: "second"},
		{Field: "email", Message: "bad"},
	}}

	assert.Equal(t, map[string]string{"name": "first", "email": "bad"}, ve.Messages())
}
