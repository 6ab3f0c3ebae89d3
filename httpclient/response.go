package httpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uday7g/sdkcore/errorhandler"
)

// Response carries the metadata of a bodyless exchange.
type Response struct {
	StatusCode int
	Headers    map[string]string
	RequestID  string
}

func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.doHead(ctx, http.MethodHead, path, opts...)
}

func (c *Client) Options(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.doHead(ctx, http.MethodOptions, path, opts...)
}

func (c *Client) doHead(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	cfg := buildRequestConfig(opts...)

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	req, err := c.buildRequest(ctx, method, path, nil, cfg)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.handleErrorResponse(resp)
	}

	headers := make(map[string]string)
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		RequestID:  resp.Header.Get(errorhandler.HeaderRequestID),
	}, nil
}
