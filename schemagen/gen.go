package schemagen

import (
	"github.com/sdkxml/android-xsd/sdk"
	"github.com/sdkxml/android-xsd/xmltree"
)

// Android's richer value grammars (color literals, dimension units,
// resource references, fractions) are modeled as plain string
// restrictions; validating the value text is a consumer's job.
var primitiveTypes = []string{"color", "reference", "dimension", "fraction"}

// GenAttributes builds the attribute-namespace schema: the primitive
// simple types, one global attribute declaration per unique attribute
// name, and one attribute group per styleable. When the same name is
// declared in several styleables the first declaration in document
// order defines the global attribute; later ones are suppressed
// without an equivalence check.
func (cfg *Config) GenAttributes(styleables []sdk.Styleable) *xmltree.Element {
	root := xs("schema")
	root.DeclareNS(schemaNS, "xs")
	root.DeclareNS(androidNS, "android")
	root.SetAttr("", "targetNamespace", androidNS)

	for _, name := range primitiveTypes {
		t := xs("simpleType")
		t.SetAttr("", "name", name)
		t.Add(restriction("xs:string"))
		root.Add(t)
	}

	seen := make(map[string]bool)
	for _, s := range styleables {
		for _, attr := range s.Attributes {
			if seen[attr.Name] {
				continue
			}
			seen[attr.Name] = true
			cfg.genAttribute(root, attr)
		}
	}

	for _, s := range styleables {
		root.Add(cfg.genGroup(s))
	}
	return root
}

// genAttribute emits the global declaration for one attribute, and
// its named enumeration type when it has a closed value set.
func (cfg *Config) genAttribute(root *xmltree.Element, attr sdk.Attribute) {
	decl := xs("attribute")
	decl.SetAttr("", "name", attr.Name)

	if len(attr.Enums) == 0 {
		// Only the first declared format is projected; format
		// unions are not modeled.
		if len(attr.Formats) > 0 && attr.Formats[0].XSD != "" {
			decl.SetAttr("", "type", attr.Formats[0].XSD)
		}
		root.Add(decl)
		return
	}

	values := xs("simpleType")
	values.SetAttr("", "name", attr.Name+"_values")
	res := restriction("xs:string")
	for _, e := range attr.Enums {
		en := xs("enumeration")
		en.SetAttr("", "value", e.Name)
		res.Add(en)
	}
	values.Add(res)
	root.Add(values)

	if len(attr.Formats) > 0 && attr.Formats[0].Name == "enum" {
		decl.SetAttr("", "type", "android:"+attr.Name+"_values")
	} else {
		// Flag attributes combine several tokens in one value;
		// model them as a space-separated list.
		inner := xs("simpleType")
		list := xs("list")
		list.SetAttr("", "itemType", "android:"+attr.Name+"_values")
		inner.Add(list)
		decl.Add(inner)
	}
	root.Add(decl)
}

func (cfg *Config) genGroup(s sdk.Styleable) *xmltree.Element {
	name := s.Name
	if name == "" {
		name = globalGroup
	}
	group := xs("attributeGroup")
	group.SetAttr("", "name", name)
	for _, attr := range s.Attributes {
		ref := xs("attribute")
		ref.SetAttr("", "ref", "android:"+attr.Name)
		group.Add(ref)
	}
	cfg.debugf("attribute group %s: %d attributes", name, len(s.Attributes))
	return group
}

func xs(local string) *xmltree.Element {
	return xmltree.New(schemaNS, local)
}

func restriction(base string) *xmltree.Element {
	r := xs("restriction")
	r.SetAttr("", "base", base)
	return r
}
