// Package xmldoc decodes raw response bodies into queryable XML documents.
//
// Service error payloads arrive with unknown shape, so they are decoded
// into a generic document tree and inspected with XPath expressions rather
// than unmarshalled into fixed structs.
package xmldoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

var ErrDecode = errors.New("xmldoc: failed to decode document")

const emptyDocument = "<empty/>"

// Parse decodes the reader into a document tree. The reader is consumed
// fully even on failure.
func Parse(r io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return doc, nil
}

// Empty returns a canonical placeholder document. Callers substitute it
// when a body fails to decode so downstream consumers always receive a
// valid document.
func Empty() *xmlquery.Node {
	doc, err := xmlquery.Parse(strings.NewReader(emptyDocument))
	if err != nil {
		panic(fmt.Sprintf("xmldoc: placeholder document failed to parse: %v", err))
	}

	return doc
}

// FindText evaluates an XPath expression against doc and returns the
// trimmed inner text of the first matching node, or "" when the expression
// matches nothing or is invalid.
func FindText(doc *xmlquery.Node, path string) string {
	if doc == nil {
		return ""
	}

	node, err := xmlquery.Query(doc, path)
	if err != nil || node == nil {
		return ""
	}

	return strings.TrimSpace(node.InnerText())
}

// Exists reports whether an XPath expression matches at least one node.
func Exists(doc *xmlquery.Node, path string) bool {
	if doc == nil {
		return false
	}

	node, err := xmlquery.Query(doc, path)

	return err == nil && node != nil
}
