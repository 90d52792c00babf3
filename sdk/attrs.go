package sdk

import (
	"fmt"
	"os"
	"strings"

	"github.com/sdkxml/android-xsd/xmltree"
)

// ParseAttrs reads an attrs.xml resource: a resources root element
// holding declare-styleable groups of attr declarations, plus any
// number of attr declarations directly under the root. The ungrouped
// attributes are collected into a synthetic Styleable with an empty
// name, appended after all named groups.
func ParseAttrs(doc []byte) ([]Styleable, error) {
	root, err := xmltree.Parse(doc)
	if err != nil {
		return nil, err
	}

	var (
		styleables []Styleable
		global     Styleable
	)
	for i := range root.Children {
		el := &root.Children[i]
		switch el.Name.Local {
		case "declare-styleable":
			s := Styleable{Name: el.Attr("", "name")}
			for j := range el.Children {
				if el.Children[j].Name.Local != "attr" {
					continue
				}
				attr, err := parseAttr(&el.Children[j])
				if err != nil {
					return nil, fmt.Errorf("styleable %s: %v", s.Name, err)
				}
				s.Attributes = append(s.Attributes, attr)
			}
			styleables = append(styleables, s)
		case "attr":
			attr, err := parseAttr(el)
			if err != nil {
				return nil, err
			}
			global.Attributes = append(global.Attributes, attr)
		}
	}
	return append(styleables, global), nil
}

func parseAttr(el *xmltree.Element) (Attribute, error) {
	attr := Attribute{Name: el.Attr("", "name")}
	if format := el.Attr("", "format"); format != "" {
		for _, tok := range strings.Split(format, "|") {
			f, err := LookupFormat(tok)
			if err != nil {
				return Attribute{}, fmt.Errorf("attr %s: %v", attr.Name, err)
			}
			attr.Formats = append(attr.Formats, f)
		}
	}
	// enum and flag values contribute to one closed value set, in
	// document order.
	for i := range el.Children {
		c := &el.Children[i]
		if c.Name.Local != "enum" && c.Name.Local != "flag" {
			continue
		}
		attr.Enums = append(attr.Enums, ValueEnum{
			Name:  c.Attr("", "name"),
			Value: c.Attr("", "value"),
		})
	}
	return attr, nil
}

// LoadAttrs parses the attrs.xml resource at the given path.
// Platform resources are not guaranteed to be UTF-8; documents with
// a declared encoding are transcoded during parsing.
func LoadAttrs(path string) ([]Styleable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseAttrs(data)
}
