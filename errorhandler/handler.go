// Package errorhandler resolves service error responses into structured
// ServiceError values.
//
// A handler is built per API family with an ordered list of unmarshallers.
// While resolving a response, each unmarshaller is tried in order until one
// recognizes the payload; callers order the list from most specific to
// least specific, with a catch-all typically last. When none matches the
// resolution fails with ErrUnmarshalFailed.
package errorhandler

import (
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/rs/zerolog"

	"github.com/uday7g/sdkcore/xmldoc"
)

// Handler selects the first unmarshaller that recognizes an error payload
// and enriches the result with response metadata. Safe for concurrent use:
// resolution reads the unmarshaller list but never mutates it.
type Handler struct {
	unmarshallers []Unmarshaller
	log           zerolog.Logger
}

type Option func(*Handler)

// WithLogger sets the diagnostic logger. Logging never alters the
// resolution outcome.
func WithLogger(log zerolog.Logger) Option {
	return func(h *Handler) {
		h.log = log
	}
}

// New builds a handler over the given unmarshaller chain. The slice is
// used as supplied: order is the caller's priority contract and is never
// changed. The chain must not be mutated while the handler is in use.
func New(unmarshallers []Unmarshaller, opts ...Option) *Handler {
	h := &Handler{
		unmarshallers: unmarshallers,
		log:           zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Handle resolves an error response into a ServiceError. Exactly one of
// the return values is set: a populated ServiceError when some
// unmarshaller matched, or ErrUnmarshalFailed when none did. Decode
// failures never surface; the unmarshallers see an empty placeholder
// document instead.
func (h *Handler) Handle(resp *ErrorResponse) (*ServiceError, error) {
	svcErr := h.resolve(resp)
	if svcErr == nil {
		h.log.Debug().
			Str("correlation_id", resp.CorrelationID()).
			Int("status", resp.StatusCode).
			Msg("no unmarshaller recognized error response")

		return nil, ErrUnmarshalFailed
	}

	svcErr.Headers = resp.Headers.Clone()

	if svcErr.ErrorCode == "" {
		svcErr.ErrorCode = fmt.Sprintf("%d %s", resp.StatusCode, resp.StatusText)
	}

	return svcErr, nil
}

func (h *Handler) resolve(resp *ErrorResponse) *ServiceError {
	doc := h.document(resp)

	for _, unmarshal := range h.unmarshallers {
		if svcErr := unmarshal(doc); svcErr != nil {
			svcErr.StatusCode = resp.StatusCode

			return svcErr
		}
	}

	return nil
}

// document decodes the response body, substituting the empty placeholder
// on any failure so the unmarshaller chain always receives a valid
// document. The catch-all unmarshaller turns the placeholder into a
// degraded result.
func (h *Handler) document(resp *ErrorResponse) *xmlquery.Node {
	if resp.Body == nil {
		return xmldoc.Empty()
	}

	doc, err := xmldoc.Parse(resp.Body)
	if err != nil {
		h.log.Debug().
			Err(err).
			Str("correlation_id", resp.CorrelationID()).
			Msg("unable to parse error response body")

		return xmldoc.Empty()
	}

	return doc
}
