package errorhandler

import (
	"github.com/antchfx/xmlquery"

	"github.com/uday7g/sdkcore/xmldoc"
)

// Unmarshaller attempts to interpret a parsed error document as one
// specific error shape. It returns nil when it does not recognize the
// shape, letting the handler fall through to the next candidate.
//
// Unmarshallers must not depend on resolution state: they receive only
// the document, and the handler stamps status code and headers afterward.
type Unmarshaller func(doc *xmlquery.Node) *ServiceError

// UnmarshalWrappedError recognizes the enveloped shape
// <ErrorResponse><Error><Code>..</Code><Message>..</Message></Error><RequestId>..</RequestId></ErrorResponse>.
func UnmarshalWrappedError(doc *xmlquery.Node) *ServiceError {
	code := xmldoc.FindText(doc, "/ErrorResponse/Error/Code")
	if code == "" {
		return nil
	}

	return &ServiceError{
		ErrorCode:  code,
		StatusCode: 0,
		Message:    xmldoc.FindText(doc, "/ErrorResponse/Error/Message"),
		RequestID:  xmldoc.FindText(doc, "/ErrorResponse/RequestId"),
		Headers:    nil,
	}
}

// UnmarshalBareError recognizes the top-level shape
// <Error><Code>..</Code><Message>..</Message></Error>.
func UnmarshalBareError(doc *xmlquery.Node) *ServiceError {
	code := xmldoc.FindText(doc, "/Error/Code")
	if code == "" {
		return nil
	}

	return &ServiceError{
		ErrorCode:  code,
		StatusCode: 0,
		Message:    xmldoc.FindText(doc, "/Error/Message"),
		RequestID:  xmldoc.FindText(doc, "/Error/RequestId"),
		Headers:    nil,
	}
}

// UnmarshalAny accepts every document, including the empty placeholder
// substituted on decode failure. Place it last so more specific
// unmarshallers are tried first; the handler synthesizes the error code
// from the response status line.
func UnmarshalAny(doc *xmlquery.Node) *ServiceError {
	return &ServiceError{
		ErrorCode:  "",
		StatusCode: 0,
		Message:    xmldoc.FindText(doc, "//Message"),
		RequestID:  "",
		Headers:    nil,
	}
}

// DefaultUnmarshallers is the stock chain: most specific first, catch-all
// last.
func DefaultUnmarshallers() []Unmarshaller {
	return []Unmarshaller{
		UnmarshalWrappedError,
		UnmarshalBareError,
		UnmarshalAny,
	}
}
