package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Marshal renders the element and its children as an XML fragment.
func Marshal(el *Element) []byte {
	var buf bytes.Buffer
	if err := Encode(&buf, el); err != nil {
		// bytes.Buffer writes cannot fail
		panic(err)
	}
	return buf.Bytes()
}

// MarshalIndent is like Marshal, but each element begins on a new
// line prefixed with prefix plus one copy of indent per nesting
// level.
func MarshalIndent(el *Element, prefix, indent string) []byte {
	var buf bytes.Buffer
	e := encoder{w: &buf, prefix: prefix, indent: indent, pretty: true}
	if err := e.encode(el, nil, 0); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Encode writes the XML encoding of the element to w. Encode returns
// any error encountered writing to w.
func Encode(w io.Writer, el *Element) error {
	e := encoder{w: w}
	return e.encode(el, nil, 0)
}

// EncodeIndent writes the indented XML encoding of the element to w.
func EncodeIndent(w io.Writer, el *Element, prefix, indent string) error {
	e := encoder{w: w, prefix: prefix, indent: indent, pretty: true}
	return e.encode(el, nil, 0)
}

func (el *Element) String() string {
	return string(MarshalIndent(el, "", "  "))
}

type encoder struct {
	w              io.Writer
	prefix, indent string
	pretty         bool
}

// qname resolves the prefix for a namespaced name against the
// declarations in effect. Names in the default namespace, and names
// whose namespace has no declared prefix, are written unprefixed.
func qname(scope []xml.Name, name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i].Space == name.Space {
			if scope[i].Local == "" {
				return name.Local
			}
			return scope[i].Local + ":" + name.Local
		}
	}
	return name.Local
}

func (e *encoder) encode(el *Element, scope []xml.Name, depth int) error {
	if depth > maxDepth {
		return nil
	}
	// Declarations already in effect are not repeated on the child.
	var decl []xml.Name
	for _, ns := range el.Scope {
		inherited := false
		for _, have := range scope {
			if have == ns {
				inherited = true
				break
			}
		}
		if !inherited {
			decl = append(decl, ns)
		}
	}
	scope = append(scope[:len(scope):len(scope)], decl...)

	var tag strings.Builder
	if e.pretty && depth > 0 {
		tag.WriteString("\n")
	}
	if e.pretty {
		tag.WriteString(e.prefix + strings.Repeat(e.indent, depth))
	}
	tag.WriteString("<" + qname(scope, el.Name))
	for _, a := range el.StartElement.Attr {
		// Namespace declarations come from Scope, below.
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		fmt.Fprintf(&tag, ` %s="%s"`, qname(scope, a.Name), escape(a.Value))
	}
	for _, ns := range decl {
		if ns.Local == "" {
			fmt.Fprintf(&tag, ` xmlns="%s"`, escape(ns.Space))
		} else {
			fmt.Fprintf(&tag, ` xmlns:%s="%s"`, ns.Local, escape(ns.Space))
		}
	}

	content := bytes.TrimSpace(el.Content)
	if len(el.Children) == 0 && len(content) == 0 {
		tag.WriteString("/>")
		_, err := io.WriteString(e.w, tag.String())
		return err
	}
	tag.WriteString(">")
	if _, err := io.WriteString(e.w, tag.String()); err != nil {
		return err
	}

	if len(el.Children) == 0 {
		// Content is raw XML text as captured from the source
		// document; writing it back verbatim avoids re-escaping
		// entities.
		if _, err := e.w.Write(content); err != nil {
			return err
		}
	} else {
		for i := range el.Children {
			if err := e.encode(&el.Children[i], scope, depth+1); err != nil {
				return err
			}
		}
		if e.pretty {
			end := "\n" + e.prefix + strings.Repeat(e.indent, depth)
			if _, err := io.WriteString(e.w, end); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(e.w, "</"+qname(scope, el.Name)+">")
	return err
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
