package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-dev-connector/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a registering user.
	FieldName = "name"

	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldText targets the body of a post.
	FieldText = "text"
)

// RequestValidator implements the Validator interface for the request
// bodies accepted by the API: RegisterRequest, Credentials and PostRequest.
//
// Only presence is checked. A value made of whitespace counts as absent.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.PostRequest:
		return v.validatePostRequest(ctx, value, fields...)
	case *models.PostRequest:
		return v.validatePostRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(req.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(creds.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePostRequest(_ context.Context, req models.PostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if isBlank(req.Text) {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
