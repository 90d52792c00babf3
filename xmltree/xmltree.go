// Package xmltree handles XML documents as trees of elements.
//
// The package serves both directions of the schema generator: parsing
// source documents such as the Android attrs.xml resource into a
// navigable tree, and building new documents element by element before
// rendering them with namespace declarations and indentation.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"

	"golang.org/x/net/html/charset"
)

const maxDepth = 1000

var errTooDeep = errors.New("xmltree: document nested too deeply")

// An Element is a single element of an XML document, along with its
// attributes and child elements. The Scope field lists the namespace
// prefixes declared on this element, from least to most specific; a
// prefix declared on an element is in effect for all of its
// descendants.
type Element struct {
	xml.StartElement
	// Raw character data between the element's tags, captured
	// during parsing. Ignored for elements that have children.
	Content  []byte
	Children []Element
	// Namespace declarations on this element. Space is the
	// namespace URI, Local the prefix (empty for the default
	// namespace).
	Scope []xml.Name
}

// New creates an element with the given namespace and local name and
// no attributes or children.
func New(space, local string) *Element {
	return &Element{StartElement: xml.StartElement{
		Name: xml.Name{Space: space, Local: local},
	}}
}

// Attr returns the value of the first attribute matching the given
// namespace and local name, or the empty string if no attribute
// matches. An empty space argument matches attributes in any
// namespace.
func (el *Element) Attr(space, local string) string {
	for _, a := range el.StartElement.Attr {
		if a.Name.Local != local {
			continue
		}
		if space == "" || space == a.Name.Space {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets an attribute on the element, replacing any existing
// attribute with the same name.
func (el *Element) SetAttr(space, local, value string) {
	for i, a := range el.StartElement.Attr {
		if a.Name.Local != local {
			continue
		}
		if space == "" || a.Name.Space == space {
			el.StartElement.Attr[i].Value = value
			return
		}
	}
	el.StartElement.Attr = append(el.StartElement.Attr, xml.Attr{
		Name:  xml.Name{Space: space, Local: local},
		Value: value,
	})
}

// DeclareNS records a namespace declaration on the element. The
// declaration is rendered as an xmlns attribute when the element is
// encoded, and is used to resolve prefixes for the names of the
// element and its descendants.
func (el *Element) DeclareNS(uri, prefix string) {
	el.Scope = append(el.Scope, xml.Name{Space: uri, Local: prefix})
}

// Add appends child elements.
func (el *Element) Add(children ...*Element) {
	for _, c := range children {
		el.Children = append(el.Children, *c)
	}
}

type scanner struct {
	*xml.Decoder
	tok xml.Token
	err error
}

func (s *scanner) scan() bool {
	if s.err != nil {
		return false
	}
	s.tok, s.err = s.Token()
	return s.err == nil
}

// Parse reads an XML document and returns its root element. A
// document that declares a non-UTF-8 encoding is transcoded as it is
// read. Element names and attributes are always UTF-8; the raw
// Content slices are only meaningful for documents that were UTF-8
// to begin with, since transcoding shifts byte offsets.
func Parse(doc []byte) (*Element, error) {
	d := xml.NewDecoder(bytes.NewReader(doc))
	d.CharsetReader = charset.NewReaderLabel
	s := scanner{Decoder: d}
	root := new(Element)

	for s.scan() {
		if start, ok := s.tok.(xml.StartElement); ok {
			root.StartElement = start
			break
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	if err := root.parse(&s, doc, 0); err != nil {
		return nil, err
	}
	return root, nil
}

func (el *Element) parse(s *scanner, data []byte, depth int) error {
	if depth > maxDepth {
		return errTooDeep
	}
	el.pushNS(el.StartElement)

	begin := s.InputOffset()
	end := begin
walk:
	for s.scan() {
		switch tok := s.tok.(type) {
		case xml.StartElement:
			child := Element{StartElement: tok.Copy(), Scope: el.Scope}
			if err := child.parse(s, data, depth+1); err != nil {
				return err
			}
			el.Children = append(el.Children, child)
		case xml.EndElement:
			if tok.Name != el.Name {
				return fmt.Errorf("expecting </%s>, got </%s>",
					el.Name.Local, tok.Name.Local)
			}
			el.Content = data[int(begin):int(end)]
			break walk
		}
		end = s.InputOffset()
	}
	return s.err
}

func (el *Element) pushNS(tag xml.StartElement) {
	var scope []xml.Name
	for _, attr := range tag.Attr {
		if attr.Name.Space == "xmlns" {
			scope = append(scope, xml.Name{Space: attr.Value, Local: attr.Name.Local})
		} else if attr.Name.Local == "xmlns" {
			scope = append(scope, xml.Name{Space: attr.Value, Local: ""})
		}
	}
	if len(scope) > 0 {
		el.Scope = append(el.Scope, scope...)
		// New backing array, so children extending the scope do
		// not clobber their siblings'.
		el.Scope = el.Scope[:len(el.Scope):len(el.Scope)]
	}
}

// SearchFunc traverses the element tree in depth-first document order
// and returns the elements for which fn returns true. Children of a
// matching element are not searched.
func (el *Element) SearchFunc(fn func(*Element) bool) []*Element {
	var results []*Element
	var search func(el *Element)

	search = func(el *Element) {
		if fn(el) {
			results = append(results, el)
			return
		}
		for i := range el.Children {
			search(&el.Children[i])
		}
	}
	for i := range el.Children {
		search(&el.Children[i])
	}
	return results
}

// Search returns the descendant elements with a matching tag. An
// empty space argument matches any namespace.
func (el *Element) Search(space, local string) []*Element {
	return el.SearchFunc(func(e *Element) bool {
		if local != e.Name.Local {
			return false
		}
		return space == "" || space == e.Name.Space
	})
}
