package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_UNAUTHENTICATED
	ErrorCode_FORBIDDEN
	ErrorCode_VALIDATION
	ErrorCode_SURVEY_NOT_FOUND
	ErrorCode_SURVEY_PROCESSED
	ErrorCode_PROVIDER_UNKNOWN
	ErrorCode_PROVIDER_NOT_CONNECTED
	ErrorCode_PROVIDER_FETCH_FAILED
	ErrorCode_OAUTH_STATE_INVALID
	ErrorCode_NOTIFY_DISPATCH_FAILED
	ErrorCode_HTTP_OK
)

// String returns the string representation of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_ALREADY_EXISTS:
		return "ALREADY_EXISTS"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_FORBIDDEN:
		return "FORBIDDEN"
	case ErrorCode_VALIDATION:
		return "VALIDATION"
	case ErrorCode_SURVEY_NOT_FOUND:
		return "SURVEY_NOT_FOUND"
	case ErrorCode_SURVEY_PROCESSED:
		return "SURVEY_PROCESSED"
	case ErrorCode_PROVIDER_UNKNOWN:
		return "PROVIDER_UNKNOWN"
	case ErrorCode_PROVIDER_NOT_CONNECTED:
		return "PROVIDER_NOT_CONNECTED"
	case ErrorCode_PROVIDER_FETCH_FAILED:
		return "PROVIDER_FETCH_FAILED"
	case ErrorCode_OAUTH_STATE_INVALID:
		return "OAUTH_STATE_INVALID"
	case ErrorCode_NOTIFY_DISPATCH_FAILED:
		return "NOTIFY_DISPATCH_FAILED"
	case ErrorCode_HTTP_OK:
		return "OK"
	default:
		return "UNKNOWN"
	}
}
