// Package xmltree holds the few tree navigation helpers the MOSMIX documents need
// on top of etree.
package xmltree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"
)

// Parse reads an xml document. Documents declaring a legacy encoding, such as the
// ISO-8859-1 forecast payloads, are decoded to UTF-8 while reading.
func Parse(b []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader

	if err := doc.ReadFromBytes(b); err != nil {
		return nil, fmt.Errorf("failed to parse xml document: %w", err)
	}

	if doc.Root() == nil {
		return nil, fmt.Errorf("xml document has no root element")
	}

	return doc, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported document encoding %s: %w", label, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("unsupported document encoding %s", label)
	}

	return enc.NewDecoder().Reader(input), nil
}

// FindFirst returns the first element, in document order, with the given local
// name regardless of its namespace prefix
func FindFirst(doc *etree.Document, localName string) *etree.Element {
	return doc.FindElement("//" + localName)
}

// FindAll returns every element with the given local name in document order
func FindAll(doc *etree.Document, localName string) []*etree.Element {
	return doc.FindElements("//" + localName)
}

// FollowingSiblings returns the elements after el that share its parent
func FollowingSiblings(el *etree.Element) []*etree.Element {
	parent := el.Parent()
	if parent == nil {
		return nil
	}

	children := parent.ChildElements()
	for i, c := range children {
		if c == el {
			return children[i+1:]
		}
	}

	return nil
}

// FirstAttribute returns the value of the first attribute declared on el, whatever
// its name. Namespace declarations are not attributes.
func FirstAttribute(el *etree.Element) (string, bool) {
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		return a.Value, true
	}
	return "", false
}

// CollapsedText returns the element text trimmed and with inner whitespace runs
// reduced to a single space
func CollapsedText(el *etree.Element) string {
	return strings.Join(strings.Fields(el.Text()), " ")
}
