package httpx

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/topicboard/topicboard/errorx"
)

const (
	RequestIDHeaderKey = "X-Request-Id"
	ContentTypeJSON    = "application/json"
)

// SetJSONRequestHeaders sets the JSON content type and a fresh correlation id
// on the request and returns the id for logging.
func SetJSONRequestHeaders(r *http.Request) (string, error) {
	if r == nil {
		return "", errorx.InternalErrorf("request can not be nil")
	}
	requestID := uuid.NewString()
	r.Header.Set("Content-Type", ContentTypeJSON)
	r.Header.Set(RequestIDHeaderKey, requestID)
	return requestID, nil
}

// RequestID returns the correlation id of the request, if any.
func RequestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get(RequestIDHeaderKey)
}
