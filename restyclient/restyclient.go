// Package restyclient integrates the error handler with resty. It exists
// for callers who already standardize on resty and want service errors
// resolved into the same ServiceError values the httpclient package
// produces.
package restyclient

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/uday7g/sdkcore/errorhandler"
	"github.com/uday7g/sdkcore/httpcfg"
)

type Option func(*resty.Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// WithConfiguration materializes transport hints into the resty client.
func WithConfiguration(cfg httpcfg.AttributeMap) Option {
	return func(c *resty.Client) {
		c.SetTransport(httpcfg.Transport(cfg))
	}
}

// New returns a resty client that stamps every request with an invocation
// id and resolves non-2xx responses through handler. A resolved
// ServiceError (or ErrUnmarshalFailed) is returned as the request error.
func New(baseURL string, handler *errorhandler.Handler, opts ...Option) *resty.Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/xml")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(errorhandler.HeaderInvocationID) == "" {
			req.SetHeader(errorhandler.HeaderInvocationID, uuid.New().String())
		}

		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() >= 200 && resp.StatusCode() < 300 {
			return nil
		}

		svcErr, err := handler.Handle(newErrorResponse(resp))
		if err != nil {
			return err
		}

		return svcErr
	})

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func newErrorResponse(resp *resty.Response) *errorhandler.ErrorResponse {
	var req *http.Request
	if resp.Request != nil {
		req = resp.Request.RawRequest
	}

	return &errorhandler.ErrorResponse{
		StatusCode: resp.StatusCode(),
		StatusText: statusText(resp),
		Headers:    resp.Header(),
		Body:       bytes.NewReader(resp.Body()),
		Request:    req,
	}
}

func statusText(resp *resty.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode())))
	if text == "" {
		return http.StatusText(resp.StatusCode())
	}

	return text
}
