package errorx

import "fmt"

// ApplicationErrorf creates a BoardError with type ErrorTypeApplication and a formatted message
func ApplicationErrorf(format string, args ...any) BoardError {
	return BoardError{
		Type:    ErrorTypeApplication,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsApplicationError(e error) bool {
	mE, ok := IsBoardError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeApplication
}
