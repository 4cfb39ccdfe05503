package errorx

import "fmt"

// ValidationErrorf creates a BoardError with type ErrorTypeValidation and a formatted message
func ValidationErrorf(format string, args ...any) BoardError {
	return BoardError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsValidationError(e error) bool {
	mE, ok := IsBoardError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeValidation
}
