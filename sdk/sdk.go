// Package sdk builds an in-memory model of an Android SDK platform's
// widget metadata.
//
// Two platform resources feed the model: a line-oriented listing of
// the widget class hierarchy, and the attrs.xml resource declaring
// styleable attribute groups. The model is built once by the loaders
// in this package and is read-only afterwards; the schemagen package
// consumes it to produce XML Schema documents.
package sdk

// A ValueEnum is one named value of an enumerated or flag attribute.
// Value is the integer encoding from the source document; only Name
// is projected into generated schemas.
type ValueEnum struct {
	Name  string
	Value string
}

// An Attribute is a single Android resource attribute: its name, the
// value formats it accepts, and the closed set of enumerated values,
// if any. A non-empty Enums list constrains the attribute to those
// values regardless of the declared formats.
type Attribute struct {
	Name    string
	Formats []AttributeFormat
	Enums   []ValueEnum
}

// A Styleable is a named group of attributes declared for one widget
// class. The group of attributes declared at the top level of
// attrs.xml, outside any declare-styleable element, is represented by
// a Styleable with an empty Name.
type Styleable struct {
	Name       string
	Attributes []Attribute
}

// Kind classifies a widget class by its role in layout XML.
type Kind int

const (
	KindOther Kind = iota
	KindLayout
	KindLayoutParams
	KindWidget
)

func (k Kind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindLayoutParams:
		return "layout-params"
	case KindWidget:
		return "widget"
	}
	return "other"
}

// A TypeInfo is one entry of the widget class hierarchy. Base is the
// fully qualified name of the parent class; it is empty for classes
// that extend java.lang.Object directly.
type TypeInfo struct {
	Name string
	Base string
	Kind Kind
}
