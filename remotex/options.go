package remotex

import (
	"net/http"

	"github.com/topicboard/topicboard/loggerx"
)

// ClientOption is a named func that sets custom options on the REST client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l *loggerx.Logger) ClientOption {
	return func(c *Client) {
		c.l = l
	}
}
