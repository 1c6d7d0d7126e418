package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoronin/go-user-gate/models"
)

func TestValidateSignUpRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SignUpRequest
		wantErr error
	}{
		{
			name: "valid request",
			req:  models.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "long-enough"},
		},
		{
			name:    "empty name",
			req:     models.SignUpRequest{Email: "ann@example.com", Password: "long-enough"},
			wantErr: ErrNameIsRequired,
		},
		{
			name:    "empty email",
			req:     models.SignUpRequest{Name: "Ann", Password: "long-enough"},
			wantErr: ErrEmailIsRequired,
		},
		{
			name:    "email without at sign",
			req:     models.SignUpRequest{Name: "Ann", Email: "ann.example.com", Password: "long-enough"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with display name is rejected",
			req:     models.SignUpRequest{Name: "Ann", Email: "Ann <ann@example.com>", Password: "long-enough"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "password of seven characters",
			req:     models.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "1234567"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name: "password of exactly eight characters",
			req:  models.SignUpRequest{Name: "Ann", Email: "ann@example.com", Password: "12345678"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSignUpRequest(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSignInRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SignInRequest
		wantErr error
	}{
		{
			name: "valid request",
			req:  models.SignInRequest{Email: "ann@example.com", Password: "long-enough"},
		},
		{
			name:    "empty email",
			req:     models.SignInRequest{Password: "long-enough"},
			wantErr: ErrEmailIsRequired,
		},
		{
			name:    "short password",
			req:     models.SignInRequest{Email: "ann@example.com", Password: "short"},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSignInRequest(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
