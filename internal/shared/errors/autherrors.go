package errors

import (
	stderrors "errors"
	"net/http"
)

// AuthError wraps an AppError with security context so callers can decide
// whether a failure is worth logging or tracking.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a mistyped password.
	ShouldLog bool
	// SecurityEvent marks failures worth tracking for abuse detection.
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError is returned for every credentials failure.
// The message never reveals whether the email or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewSSOLoginError covers failures in the identity-provider flow. A bad or
// replayed state parameter is a security event; a failed code exchange is an
// upstream problem that should be logged.
func NewSSOLoginError(message string, securityEvent bool) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: message,
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     !securityEvent,
		SecurityEvent: securityEvent,
	}
}

func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether an auth failure belongs in the logs.
// Non-auth errors default to true.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent reports whether the failure should be tracked for abuse
// detection, such as repeated credential guessing.
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
