package main

import (
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestValidateAuthURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "https", input: "https://swift.example.com/auth/v1.0"},
		{name: "http with port", input: "http://127.0.0.1:8080/auth/v1.0"},
		{name: "empty", input: "", wantErr: true},
		{name: "no scheme", input: "swift.example.com/auth/v1.0", wantErr: true},
		{name: "ftp", input: "ftp://swift.example.com/", wantErr: true},
		{name: "no host", input: "http:///auth/v1.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAuthURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireValue(t *testing.T) {
	validate := requireValue("user")

	assert.EqualError(t, validate(""), "user is required")
	assert.NoError(t, validate("account:user"))
}

func TestPromptError(t *testing.T) {
	for _, err := range []error{promptui.ErrInterrupt, promptui.ErrAbort, promptui.ErrEOF} {
		assert.ErrorIs(t, promptError(err), errCancelled)
	}

	other := errors.New("terminal gone")
	assert.Equal(t, other, promptError(other))
}
