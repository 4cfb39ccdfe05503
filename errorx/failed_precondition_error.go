package errorx

import "fmt"

// FailedPreconditionErrorf creates a BoardError with type ErrorTypeFailedPrecondition and a formatted message
func FailedPreconditionErrorf(format string, args ...any) BoardError {
	return BoardError{
		Type:    ErrorTypeFailedPrecondition,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsFailedPreconditionError(e error) bool {
	mE, ok := IsBoardError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeFailedPrecondition
}
