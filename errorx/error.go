package errorx

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

type BoardError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	OriginalError error // Not surfaced to the presentation layer
}

var _ error = (*BoardError)(nil)

func (e BoardError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

func (e BoardError) Unwrap() error {
	return e.OriginalError
}

// WithWrap returns a copy of the error carrying the given cause.
func (e BoardError) WithWrap(cause error) BoardError {
	e.OriginalError = cause
	return e
}

var errorPattern = regexp.MustCompile(`\[(.*?)\] (.*)`)

// NewBoardErrorFromMessage parses the `[TYPE] message` form produced by
// BoardError.Error back into a BoardError.
func NewBoardErrorFromMessage(msg string) (*BoardError, error) {
	m := errorPattern.FindStringSubmatch(msg)
	if m == nil || len(m) < 2 {
		return nil, fmt.Errorf("%q is not a valid error type", msg)
	}

	eT, err := ParseErrorType(m[1])
	if err != nil {
		return nil, err
	}

	if len(m) >= 3 {
		msg = m[2]
	}

	return &BoardError{
		Type:    eT,
		Message: msg,
	}, nil
}

func IsBoardError(e error) (*BoardError, bool) {
	e = errors.Cause(e)
	mE, ok := e.(BoardError)
	if !ok {
		return nil, false
	}

	if mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return &mE, true
}
