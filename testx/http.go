package testx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

// executeRequest runs the request through the handler and captures the
// response in a recorder for inspection.
func executeRequest(req *http.Request, h http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func unmarshalBody[T any](res *httptest.ResponseRecorder) T {
	body, _ := io.ReadAll(res.Body)
	var data T
	_ = json.Unmarshal(body, &data)
	return data
}

// GetJSON issues a GET against the handler and decodes the JSON response.
func GetJSON[T any](h http.Handler, url string) (*httptest.ResponseRecorder, T) {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Content-Type", "application/json")

	res := executeRequest(req, h)
	return res, unmarshalBody[T](res)
}

// PostJSON issues a POST with the given JSON body against the handler and
// decodes the JSON response.
func PostJSON[T any](h http.Handler, url string, jsonStr string) (*httptest.ResponseRecorder, T) {
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(jsonStr))
	req.Header.Set("Content-Type", "application/json")

	res := executeRequest(req, h)
	return res, unmarshalBody[T](res)
}

// DeleteJSON issues a DELETE against the handler and decodes the JSON
// response.
func DeleteJSON[T any](h http.Handler, url string) (*httptest.ResponseRecorder, T) {
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Content-Type", "application/json")

	res := executeRequest(req, h)
	return res, unmarshalBody[T](res)
}
