package errorx

import "fmt"

// InternalErrorf creates a BoardError with type ErrorTypeInternal and a formatted message
func InternalErrorf(format string, args ...any) BoardError {
	return BoardError{
		Type:    ErrorTypeInternal,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsInternalError(e error) bool {
	mE, ok := IsBoardError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeInternal
}
