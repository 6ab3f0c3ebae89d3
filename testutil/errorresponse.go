package testutil

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uday7g/sdkcore/errorhandler"
)

// XMLErrorBody renders the bare <Error> payload shape.
func XMLErrorBody(code, message string) string {
	return fmt.Sprintf("<Error><Code>%s</Code><Message>%s</Message></Error>",
		escape(code), escape(message))
}

// WrappedXMLErrorBody renders the enveloped <ErrorResponse> payload shape.
func WrappedXMLErrorBody(code, message, requestID string) string {
	return fmt.Sprintf(
		"<ErrorResponse><Error><Code>%s</Code><Message>%s</Message></Error><RequestId>%s</RequestId></ErrorResponse>",
		escape(code), escape(message), escape(requestID))
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}

// NewErrorResponse builds an ErrorResponse fixture with the given status
// line, headers, and body.
func NewErrorResponse(status int, statusText, body string, headers map[string]string) *errorhandler.ErrorResponse {
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}

	return &errorhandler.ErrorResponse{
		StatusCode: status,
		StatusText: statusText,
		Headers:    h,
		Body:       strings.NewReader(body),
		Request:    nil,
	}
}

// RequireServiceError asserts that err carries a ServiceError with the
// expected error code and returns it for further assertions.
func RequireServiceError(t *testing.T, err error, expectedCode string) *errorhandler.ServiceError {
	t.Helper()

	svcErr, ok := errorhandler.IsServiceError(err)
	require.True(t, ok, "expected a ServiceError, got %v", err)
	require.Equal(t, expectedCode, svcErr.ErrorCode)

	return svcErr
}
