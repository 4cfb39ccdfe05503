package remotex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/topicboard/topicboard/errorx"
	"github.com/topicboard/topicboard/httpx"
	"github.com/topicboard/topicboard/loggerx"
	"github.com/topicboard/topicboard/retryx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ClientConfig is the validated configuration of the HTTP client.
type ClientConfig struct {
	BaseURL string `validate:"required,url"`
	Timeout time.Duration
}

// Client talks to the remote topic service over its REST contract.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	l          *loggerx.Logger
}

var _ Service = (*Client)(nil)

// NewClient creates a REST client for the remote topic service.
func NewClient(cfg ClientConfig, opts ...ClientOption) (*Client, error) {
	if err := validate.Struct(&cfg); err != nil {
		return nil, errorx.ValidationErrorf("invalid client config: %v", err)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errorx.ValidationErrorf("invalid base url %q: %v", cfg.BaseURL, err)
	}

	c := &Client{
		baseURL:    base,
		httpClient: httpx.NewClient(httpx.WithTimeout(cfg.Timeout)),
		l:          loggerx.New("remotex"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type submitRequestBody struct {
	TopicName  string `json:"topic_name"`
	Partitions int32  `json:"partitions"`
}

type alterTopicBody struct {
	Partitions int32 `json:"partitions"`
}

type topicEnvelope struct {
	Topic *Topic `json:"topic"`
}

// FetchDashboard implements Service.
func (c *Client) FetchDashboard(ctx context.Context) (*DashboardSnapshot, error) {
	var snap DashboardSnapshot
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetTopic implements Service.
func (c *Client) GetTopic(ctx context.Context, name string) (*Topic, error) {
	var env topicEnvelope
	if err := c.do(ctx, http.MethodGet, "/topics/"+url.PathEscape(name), nil, &env); err != nil {
		return nil, err
	}
	if env.Topic == nil {
		return nil, errorx.NotFoundErrorf("topic %q not found", name)
	}
	return env.Topic, nil
}

// SubmitRequest implements Service.
func (c *Client) SubmitRequest(ctx context.Context, topicName string, partitions int32) (*OpResult, error) {
	return c.doOp(ctx, http.MethodPost, "/requests", submitRequestBody{
		TopicName:  topicName,
		Partitions: partitions,
	})
}

// MaterializeRequest implements Service.
func (c *Client) MaterializeRequest(ctx context.Context, id int64) (*OpResult, error) {
	return c.doOp(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/materialize", id), nil)
}

// AlterTopic implements Service.
func (c *Client) AlterTopic(ctx context.Context, name string, partitions int32) (*OpResult, error) {
	return c.doOp(ctx, http.MethodPost, "/topics/"+url.PathEscape(name)+"/alter", alterTopicBody{
		Partitions: partitions,
	})
}

// DeleteTopic implements Service.
func (c *Client) DeleteTopic(ctx context.Context, id int64) (*OpResult, error) {
	return c.doOp(ctx, http.MethodDelete, fmt.Sprintf("/topics/%d", id), nil)
}

// WaitReady probes the service until a dashboard fetch succeeds or the
// retries are exhausted. Intended for startup only; individual mutations
// never retry.
func (c *Client) WaitReady(ctx context.Context, opts ...retryx.RetryOption) error {
	return retryx.ConstantRetry(func() error {
		_, err := c.FetchDashboard(ctx)
		return err
	}, opts...)
}

// doOp issues a mutation and decodes the uniform OpResult envelope. The
// service reports application-level rejections inside the envelope, on 2xx
// and 4xx alike, so the body is decoded regardless of status when it parses.
func (c *Client) doOp(ctx context.Context, method, path string, body any) (*OpResult, error) {
	var res OpResult
	if err := c.do(ctx, method, path, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	u := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errorx.InternalErrorf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errorx.InternalErrorf("failed to build request: %v", err)
	}

	requestID, err := httpx.SetJSONRequestHeaders(req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorx.TransportErrorf("%s %s failed", method, path).WithWrap(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorx.TransportErrorf("%s %s: failed to read response", method, path).WithWrap(err)
	}

	c.l.Debug(ctx, "remote call completed",
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("request_id", requestID),
		attribute.Int("status", resp.StatusCode),
		attribute.String("duration", time.Since(start).String()),
	)

	if resp.StatusCode >= 300 {
		// Application-level rejections ride the OpResult envelope on error
		// statuses too; anything else is surfaced as a bare application error.
		if opOut, ok := out.(*OpResult); ok && len(raw) > 0 {
			if err := json.Unmarshal(raw, opOut); err == nil {
				return nil
			}
		}
		return errorx.ApplicationErrorf("%s %s failed with status %d", method, path, resp.StatusCode)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errorx.InternalErrorf("%s %s: undecodable response body: %v", method, path, err)
		}
	}

	return nil
}
