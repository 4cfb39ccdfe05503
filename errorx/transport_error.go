package errorx

import "fmt"

// TransportErrorf creates a BoardError with type ErrorTypeTransport and a formatted message
func TransportErrorf(format string, args ...any) BoardError {
	return BoardError{
		Type:    ErrorTypeTransport,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsTransportError(e error) bool {
	mE, ok := IsBoardError(e)
	if !ok {
		return false
	}

	return mE.Type == ErrorTypeTransport
}
