package httpx

import (
	"crypto/tls"
	"net/http"
	"time"
)

const clientDefaultTimeout = 10 * time.Second

// GetDefaultHTTPClient returns an HTTP client with basic settings.
func GetDefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: clientDefaultTimeout,
	}
}

// NewClient creates a configurable HTTP client.
func NewClient(options ...Option) *http.Client {
	settings := &clientSettings{
		timeout:   clientDefaultTimeout,
		tlsConfig: &tls.Config{},
	}
	for _, option := range options {
		option(settings)
	}

	return &http.Client{
		Timeout: settings.timeout,
		Transport: &http.Transport{
			TLSClientConfig: settings.tlsConfig,
		},
	}
}

type clientSettings struct {
	timeout   time.Duration
	tlsConfig *tls.Config
}

type Option func(*clientSettings)

func WithTimeout(d time.Duration) Option {
	return func(s *clientSettings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithTLSConfig(cfg *tls.Config) Option {
	return func(s *clientSettings) {
		if cfg != nil {
			s.tlsConfig = cfg
		}
	}
}

// WithInsecureSkipVerify disables certificate verification. For local
// development setups only.
func WithInsecureSkipVerify() Option {
	return func(s *clientSettings) {
		s.tlsConfig.InsecureSkipVerify = true
	}
}
