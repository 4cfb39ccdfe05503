package errorx

type ErrorType string

// The error types mirror the failure taxonomy of the dashboard: local input
// validation, transport-level failures, application-level rejections reported
// by the remote topic service, and conflicts caused by stale views.
const (
	// ErrorTypeUnspecified should not be used, it is only useful to assert
	// whether or not an error is a BoardError during cast.
	ErrorTypeUnspecified        = ErrorType("")
	ErrorTypeValidation         = ErrorType("VALIDATION")
	ErrorTypeTransport          = ErrorType("TRANSPORT")
	ErrorTypeApplication        = ErrorType("APPLICATION")
	ErrorTypeConflict           = ErrorType("CONFLICT")
	ErrorTypeNotFound           = ErrorType("NOT_FOUND")
	ErrorTypeFailedPrecondition = ErrorType("FAILED_PRECONDITION")
	ErrorTypeInternal           = ErrorType("INTERNAL")
)

func ParseErrorType(s string) (ErrorType, error) {
	e := ErrorType(s)
	if err := e.Validate(); err != nil {
		return ErrorTypeUnspecified, err
	}

	return e, nil
}

func (e ErrorType) String() string {
	return string(e)
}

func (e ErrorType) Validate() error {
	switch e {
	case ErrorTypeValidation,
		ErrorTypeTransport,
		ErrorTypeApplication,
		ErrorTypeConflict,
		ErrorTypeNotFound,
		ErrorTypeFailedPrecondition,
		ErrorTypeInternal:
		return nil
	default:
		return ValidationErrorf("invalid error type: %s", e)
	}
}
