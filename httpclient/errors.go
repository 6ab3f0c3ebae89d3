package httpclient

import "errors"

var (
	ErrInvalidConfig    = errors.New("httpclient: invalid client configuration")
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrCreateRequest    = errors.New("httpclient: failed to create request")
	ErrEncodeBody       = errors.New("httpclient: failed to encode request body")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
)
