package errorhandler_test

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uday7g/sdkcore/errorhandler"
	"github.com/uday7g/sdkcore/xmldoc"
)

func errorResponse(status int, statusText, body string) *errorhandler.ErrorResponse {
	return &errorhandler.ErrorResponse{
		StatusCode: status,
		StatusText: statusText,
		Headers:    http.Header{},
		Body:       strings.NewReader(body),
		Request:    nil,
	}
}

// tagged returns an unmarshaller that matches any document and records its
// own position in the chain as the error code.
func tagged(code string) errorhandler.Unmarshaller {
	return func(_ *xmlquery.Node) *errorhandler.ServiceError {
		return &errorhandler.ServiceError{
			ErrorCode:  code,
			StatusCode: 0,
			Message:    "",
			RequestID:  "",
			Headers:    nil,
		}
	}
}

func never(_ *xmlquery.Node) *errorhandler.ServiceError {
	return nil
}

func TestHandle_FirstMatchWinsInCallerOrder(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New([]errorhandler.Unmarshaller{
		never,
		tagged("second"),
		tagged("third"),
	})

	svcErr, err := handler.Handle(errorResponse(403, "Forbidden", "<Error><Code>AccessDenied</Code></Error>"))

	require.NoError(t, err)
	assert.Equal(t, "second", svcErr.ErrorCode)
}

func TestHandle_StampsStatusCodeOnMatch(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New([]errorhandler.Unmarshaller{tagged("x")})

	svcErr, err := handler.Handle(errorResponse(503, "Service Unavailable", "<Error/>"))

	require.NoError(t, err)
	assert.Equal(t, 503, svcErr.StatusCode)
}

func TestHandle_MalformedBodyNeverSurfacesDecodeError(t *testing.T) {
	t.Parallel()

	var seen *xmlquery.Node

	capture := func(doc *xmlquery.Node) *errorhandler.ServiceError {
		seen = doc

		return tagged("captured")(doc)
	}

	handler := errorhandler.New([]errorhandler.Unmarshaller{capture})

	resp := &errorhandler.ErrorResponse{
		StatusCode: 500,
		StatusText: "Internal Error",
		Headers:    http.Header{},
		Body:       bytes.NewReader([]byte{0x00, 0x1f, '<', '<'}),
		Request:    nil,
	}

	svcErr, err := handler.Handle(resp)

	require.NoError(t, err)
	require.NotNil(t, svcErr)
	require.NotNil(t, seen, "unmarshallers must still run against the placeholder document")
	assert.True(t, xmldoc.Exists(seen, "/empty"))
}

func TestHandle_NilBodyUsesPlaceholderDocument(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New(errorhandler.DefaultUnmarshallers())

	resp := &errorhandler.ErrorResponse{
		StatusCode: 502,
		StatusText: "Bad Gateway",
		Headers:    http.Header{},
		Body:       nil,
		Request:    nil,
	}

	svcErr, err := handler.Handle(resp)

	require.NoError(t, err)
	assert.Equal(t, "502 Bad Gateway", svcErr.ErrorCode)
}

func TestHandle_NoMatchFailsWithErrUnmarshalFailed(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New([]errorhandler.Unmarshaller{never, never, never})

	svcErr, err := handler.Handle(errorResponse(400, "Bad Request", "<Unrelated/>"))

	require.ErrorIs(t, err, errorhandler.ErrUnmarshalFailed)
	assert.Nil(t, svcErr)
}

func TestHandle_EmptyUnmarshallerChainFails(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New(nil)

	_, err := handler.Handle(errorResponse(400, "Bad Request", "<Error/>"))

	require.ErrorIs(t, err, errorhandler.ErrUnmarshalFailed)
}

func TestHandle_SynthesizesErrorCodeFromStatusLine(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New([]errorhandler.Unmarshaller{tagged("")})

	svcErr, err := handler.Handle(errorResponse(404, "Not Found", "<Error/>"))

	require.NoError(t, err)
	assert.Equal(t, "404 Not Found", svcErr.ErrorCode)
}

func TestHandle_KeepsUnmarshallerErrorCodeWhenPresent(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New([]errorhandler.Unmarshaller{tagged("Throttled")})

	svcErr, err := handler.Handle(errorResponse(429, "Too Many Requests", "<Error/>"))

	require.NoError(t, err)
	assert.Equal(t, "Throttled", svcErr.ErrorCode)
}

func TestHandle_AttachesFullResponseHeadersByValue(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Content-Type", "application/xml")
	headers.Set(errorhandler.HeaderRequestID, "req-42")
	headers.Add("X-Multi", "a")
	headers.Add("X-Multi", "b")

	handler := errorhandler.New([]errorhandler.Unmarshaller{tagged("x")})

	resp := &errorhandler.ErrorResponse{
		StatusCode: 400,
		StatusText: "Bad Request",
		Headers:    headers,
		Body:       strings.NewReader("<Error/>"),
		Request:    nil,
	}

	svcErr, err := handler.Handle(resp)

	require.NoError(t, err)
	assert.Equal(t, headers, svcErr.Headers)

	// Attached headers are a copy, not an alias of the response map.
	svcErr.Headers.Set("X-Multi", "mutated")
	assert.Equal(t, []string{"a", "b"}, headers.Values("X-Multi"))
}

func TestHandle_EndToEndNotFound(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set(errorhandler.HeaderRequestID, "req-404")

	handler := errorhandler.New(errorhandler.DefaultUnmarshallers())

	resp := &errorhandler.ErrorResponse{
		StatusCode: 404,
		StatusText: "Not Found",
		Headers:    headers,
		Body:       strings.NewReader("<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>"),
		Request:    nil,
	}

	svcErr, err := handler.Handle(resp)

	require.NoError(t, err)
	assert.Equal(t, "NoSuchKey", svcErr.ErrorCode)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "The specified key does not exist.", svcErr.Message)
	assert.Equal(t, headers, svcErr.Headers)
}

func TestHandle_EndToEndUnparseableBodyWithCatchAll(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New(errorhandler.DefaultUnmarshallers())

	resp := &errorhandler.ErrorResponse{
		StatusCode: 500,
		StatusText: "Internal Error",
		Headers:    http.Header{},
		Body:       bytes.NewReader([]byte{0xff, 0xfe, 0x00}),
		Request:    nil,
	}

	svcErr, err := handler.Handle(resp)

	require.NoError(t, err)
	assert.Equal(t, "500 Internal Error", svcErr.ErrorCode)
	assert.Equal(t, 500, svcErr.StatusCode)
}

func TestHandle_EndToEndNoMatchAcrossThreeUnmarshallers(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New([]errorhandler.Unmarshaller{
		errorhandler.UnmarshalWrappedError,
		errorhandler.UnmarshalBareError,
		never,
	})

	svcErr, err := handler.Handle(errorResponse(400, "Bad Request", "<Status>rejected</Status>"))

	require.ErrorIs(t, err, errorhandler.ErrUnmarshalFailed)
	assert.Nil(t, svcErr)
}

func TestServiceError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	handler := errorhandler.New(errorhandler.DefaultUnmarshallers())

	_, err := handler.Handle(errorResponse(409, "Conflict", "<Error><Code>BucketNotEmpty</Code></Error>"))
	require.NoError(t, err)

	svcErr := &errorhandler.ServiceError{
		ErrorCode:  "BucketNotEmpty",
		StatusCode: 409,
		Message:    "",
		RequestID:  "",
		Headers:    nil,
	}

	require.ErrorIs(t, svcErr, errorhandler.ErrServiceError)

	var wrapped error = svcErr

	got, ok := errorhandler.IsServiceError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "BucketNotEmpty", got.ErrorCode)

	_, ok = errorhandler.IsServiceError(errors.New("plain"))
	assert.False(t, ok)
}
