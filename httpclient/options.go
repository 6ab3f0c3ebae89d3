package httpclient

import (
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/uday7g/sdkcore/errorhandler"
	"github.com/uday7g/sdkcore/httpcfg"
	"github.com/uday7g/sdkcore/logutil"
)

const (
	DefaultTimeout    = 30 * time.Second
	HeaderContentType = "Content-Type"
	ContentTypeXML    = "application/xml"
)

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithConfiguration materializes transport hints (pool size, connect
// timeout, hostname verification) into the underlying http.Client.
func WithConfiguration(cfg httpcfg.AttributeMap) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.Transport = httpcfg.Transport(cfg)
		}
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

// WithErrorHandler replaces the stock error handler. Use it to supply a
// service-specific unmarshaller chain.
func WithErrorHandler(handler *errorhandler.Handler) Option {
	return func(c *Client) {
		c.errorHandler = handler
	}
}

// WithUnmarshallers builds the error handler from the given chain,
// keeping the client's logger for resolver diagnostics.
func WithUnmarshallers(unmarshallers ...errorhandler.Unmarshaller) Option {
	return func(c *Client) {
		c.errorHandler = errorhandler.New(unmarshallers, errorhandler.WithLogger(c.log))
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithLogLevel(level string) Option {
	return func(c *Client) {
		c.log = c.log.Level(logutil.ParseZerologLevel(level))
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}

type RequestOption func(*requestConfig)

type requestConfig struct {
	headers      map[string]string
	query        map[string]string
	timeout      time.Duration
	invocationID string
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}

		rc.headers[key] = value
	}
}

func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(rc *requestConfig) {
		rc.timeout = timeout
	}
}

// WithInvocationID overrides the generated invocation id for one request.
func WithInvocationID(id string) RequestOption {
	return func(rc *requestConfig) {
		rc.invocationID = id
	}
}

func WithQuery(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = make(map[string]string)
		}

		rc.query[key] = value
	}
}

func WithQueryParams(params map[string]string) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = make(map[string]string)
		}

		maps.Copy(rc.query, params)
	}
}
