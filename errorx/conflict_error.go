package errorx

import "fmt"

// ConflictErrorf creates a BoardError with type ErrorTypeConflict and a formatted message.
// Conflict errors mark mutations rejected because the client view went stale,
// e.g. a request materialized concurrently from another session.
func ConflictErrorf(format string, args ...any) BoardError {
	return BoardError{
		Type:    ErrorTypeConflict,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsConflictError(e error) bool {
	mE, ok := IsBoardError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeConflict
}
