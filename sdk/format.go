package sdk

import "fmt"

// An AttributeFormat is one of the fixed value kinds an Android
// resource attribute may declare. XSD is the qualified name of the
// schema type the format maps to; it is empty for the enum format,
// which is realized through a named enumeration restriction instead
// of a primitive type.
type AttributeFormat struct {
	Name string
	XSD  string
}

// The format catalog is exhaustive and never extended at runtime.
// The color, reference, dimension and fraction formats map to string
// restrictions declared in the generated attribute schema itself;
// the rest map to XML Schema builtins.
var formatCatalog = map[string]AttributeFormat{
	"boolean":   {"boolean", "xs:boolean"},
	"color":     {"color", "android:color"},
	"dimension": {"dimension", "android:dimension"},
	"enum":      {"enum", ""},
	"float":     {"float", "xs:float"},
	"fraction":  {"fraction", "android:fraction"},
	"integer":   {"integer", "xs:integer"},
	"reference": {"reference", "android:reference"},
	"string":    {"string", "xs:string"},
}

// LookupFormat resolves a format token from an attr declaration
// against the fixed catalog. An unknown token means the source data
// and the catalog disagree; the caller is expected to abort.
func LookupFormat(name string) (AttributeFormat, error) {
	f, ok := formatCatalog[name]
	if !ok {
		return AttributeFormat{}, fmt.Errorf("unknown attribute format %q", name)
	}
	return f, nil
}
