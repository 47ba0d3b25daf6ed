package errors

import "errors"

// Feedback errors
var (
	ErrSurveyNotFound = errors.New("survey not found")
)

// Calendar provider errors
var (
	ErrUnknownProvider      = errors.New("unknown calendar provider")
	ErrProviderNotConnected = errors.New("calendar provider not connected")
	ErrInvalidOAuthState    = errors.New("invalid oauth state")
)
