package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

func ErrForbidden(message string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_FORBIDDEN,
		Message:  message,
	}
}

// Scoring errors

// ErrMeetingValidation reports a malformed or out-of-range meeting
// attribute. The offending field is attached so callers can correct
// the input; nothing is coerced or clamped on their behalf.
func ErrMeetingValidation(field, reason string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  fmt.Sprintf("invalid meeting: %s", reason),
	}.WithDetail("field", field)
}

// ErrBatchValidation wraps a per-meeting validation failure with the
// position of the offending meeting in the batch.
func ErrBatchValidation(index int, cause AppError) AppError {
	return cause.WithDetail("meeting_index", fmt.Sprintf("%d", index))
}

// Feedback errors

func ErrSurveyNotFound(surveyID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_SURVEY_NOT_FOUND,
		Message:  "Survey not found",
	}.WithDetail("survey_id", surveyID)
}

// Calendar provider errors

func ErrUnknownProvider(name string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_PROVIDER_UNKNOWN,
		Message:  "Unknown calendar provider",
	}.WithDetail("provider", name)
}

func ErrProviderNotConnected(name string) AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_PROVIDER_NOT_CONNECTED,
		Message:  "Calendar provider is not connected",
	}.WithDetail("provider", name)
}

func ErrProviderFetchFailed(name string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_PROVIDER_FETCH_FAILED,
		Message:  fmt.Sprintf("Failed to fetch meetings from %s", name),
	}
}

func ErrOAuthStateInvalid() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_OAUTH_STATE_INVALID,
		Message:  "OAuth state token is invalid or expired",
	}
}

// Notification errors

func ErrNotifyDispatchFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_NOTIFY_DISPATCH_FAILED,
		Message:  "One or more notification channels failed",
	}
}
