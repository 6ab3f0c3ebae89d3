package errorhandler

import (
	"io"
	"net/http"
	"strconv"
	"strings"
)

const (
	// HeaderInvocationID carries the client-assigned id on the
	// originating request. The name must match the wire exactly.
	HeaderInvocationID = "amz-sdk-invocation-id"

	// HeaderRequestID carries the service-assigned id on the response.
	HeaderRequestID = "x-amzn-RequestId"

	unknownCorrelationID = "Unknown"
)

// ErrorResponse is the raw material for resolution: the non-2xx response
// as delivered by the transport. Immutable once constructed; the body is
// consumed at most once during resolution.
type ErrorResponse struct {
	StatusCode int
	StatusText string
	Headers    http.Header
	Body       io.Reader
	Request    *http.Request
}

// FromHTTPResponse adapts a stdlib response. The caller remains
// responsible for closing the response body.
func FromHTTPResponse(resp *http.Response) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Headers:    resp.Header,
		Body:       resp.Body,
		Request:    resp.Request,
	}
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}

	return text
}

// CorrelationID combines the client-assigned invocation id from the
// originating request with the service-assigned request id from the
// response. Diagnostic only: it never influences resolution. A missing
// request or missing headers degrade to the "Unknown" sentinel.
func (r *ErrorResponse) CorrelationID() string {
	var b strings.Builder

	if r.Request != nil {
		if tx := r.Request.Header.Get(HeaderInvocationID); tx != "" {
			b.WriteString("Invocation Id:")
			b.WriteString(tx)
		}
	}

	if reqID := r.Headers.Get(HeaderRequestID); reqID != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}

		b.WriteString("Request Id:")
		b.WriteString(reqID)
	}

	if b.Len() == 0 {
		return unknownCorrelationID
	}

	return b.String()
}
