package errorx

import "fmt"

// NotFoundErrorf creates a BoardError with type ErrorTypeNotFound and a formatted message
func NotFoundErrorf(format string, args ...any) BoardError {
	return BoardError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsNotFoundError(e error) bool {
	mE, ok := IsBoardError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeNotFound
}
