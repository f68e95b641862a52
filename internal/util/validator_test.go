package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorTestBody struct {
	Name  string `json:"name" validate:"strNotEmpty"`
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"cmin=2,cmax=5"`
}

func TestRegisterCustomValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	tests := []struct {
		name      string
		body      validatorTestBody
		wantField []string
	}{
		{"Valid", validatorTestBody{Name: "Maria", Email: "m@x.com", Title: "ATA"}, nil},
		{"Whitespace name", validatorTestBody{Name: "   ", Email: "m@x.com", Title: "ATA"}, []string{"Name"}},
		{"Bad email", validatorTestBody{Name: "Maria", Email: "nope", Title: "ATA"}, []string{"Email"}},
		{"Title too short after trim", validatorTestBody{Name: "Maria", Email: "m@x.com", Title: " a "}, []string{"Title"}},
		{"Title too long", validatorTestBody{Name: "Maria", Email: "m@x.com", Title: "abcdef"}, []string{"Title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.body)
			if tt.wantField == nil {
				assert.NoError(t, err)
				return
			}

			msgs := GenerateErrorMessages(err)
			require.Len(t, msgs, len(tt.wantField))
			for i, f := range tt.wantField {
				assert.Equal(t, f, msgs[i].Field)
			}
		})
	}
}

func TestGenerateErrorMessages(t *testing.T) {
	msgs := GenerateErrorMessages(errors.New("boom"), "recordId")
	assert.Equal(t, []ApiError{{Field: "recordId", Message: "boom"}}, msgs)

	msgs = GenerateErrorMessages(errors.New("boom"))
	assert.Equal(t, "Unknown", msgs[0].Field)

	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	err := v.Struct(validatorTestBody{Name: "", Email: "m@x.com", Title: "ATA"})
	msgs = GenerateErrorMessages(err, map[string]string{"Name": "Nome"})
	assert.Equal(t, "Nome", msgs[0].Field)
	assert.Equal(t, "Nome must not be empty or contain only whitespace characters", msgs[0].Message)
}

func TestJsonTagName(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(JsonTagName)
	require.NoError(t, RegisterCustomValidations(v))

	err := v.Struct(validatorTestBody{Name: " ", Email: "m@x.com", Title: "ATA"})
	msgs := GenerateErrorMessages(err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "name", msgs[0].Field)
}
