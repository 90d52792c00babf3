package schemagen

import (
	"strings"

	"github.com/sdkxml/android-xsd/sdk"
	"github.com/sdkxml/android-xsd/xmltree"
)

const lpSuffix = ".LayoutParams"

// normalizeTypeName reduces a fully qualified class name to the local
// name used in the layout schema. Names ending in .LayoutParams are
// localized on the part before the suffix, with the suffix text then
// reattached: android.widget.LinearLayout.LayoutParams becomes
// LinearLayout.LayoutParams, not LayoutParams.
func normalizeTypeName(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, lpSuffix) {
		return localName(strings.TrimSuffix(name, lpSuffix)) + lpSuffix
	}
	return localName(name)
}

func localName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// GenLayout builds the default-namespace schema: one element
// declaration immediately followed by its complex type, per hierarchy
// entry, in model order. Each complex type extends its base class's
// type, or xs:anyType for classes with no explicit base, and pulls in
// the attribute group of the styleable whose name equals the
// normalized class name, when one exists.
func (cfg *Config) GenLayout(types []sdk.TypeInfo, styleables []sdk.Styleable) *xmltree.Element {
	root := xs("schema")
	root.DeclareNS(schemaNS, "xs")
	root.DeclareNS(androidNS, "android")

	grouped := make(map[string]bool, len(styleables))
	for _, s := range styleables {
		if s.Name != "" {
			grouped[s.Name] = true
		}
	}

	for _, t := range types {
		name := normalizeTypeName(t.Name)

		el := xs("element")
		el.SetAttr("", "name", name)
		el.SetAttr("", "type", name+"_Type")
		root.Add(el)

		base := "xs:anyType"
		if t.Base != "" {
			base = normalizeTypeName(t.Base) + "_Type"
		}
		ext := xs("extension")
		ext.SetAttr("", "base", base)
		if grouped[name] {
			ref := xs("attributeGroup")
			ref.SetAttr("", "ref", "android:"+name)
			ext.Add(ref)
		}
		content := xs("complexContent")
		content.Add(ext)
		ct := xs("complexType")
		ct.SetAttr("", "name", name+"_Type")
		ct.Add(content)
		root.Add(ct)
	}
	return root
}
