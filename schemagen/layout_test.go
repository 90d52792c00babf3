package schemagen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdkxml/android-xsd/sdk"
	"github.com/sdkxml/android-xsd/xmltree"
)

func TestNormalizeTypeName(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"android.widget.Button", "Button"},
		{"android.view.View", "View"},
		{"View", "View"},
		{"", ""},
		// the suffix is stripped, the remainder localized, and
		// the suffix text reattached
		{"android.widget.LinearLayout.LayoutParams", "LinearLayout.LayoutParams"},
		{"android.view.ViewGroup.LayoutParams", "ViewGroup.LayoutParams"},
	} {
		require.Equal(t, tt.want, normalizeTypeName(tt.in), "normalizeTypeName(%q)", tt.in)
	}
}

func testHierarchy() []sdk.TypeInfo {
	return []sdk.TypeInfo{
		{Name: "android.view.View", Base: "", Kind: sdk.KindWidget},
		{Name: "android.widget.TextView", Base: "android.view.View", Kind: sdk.KindWidget},
		{Name: "android.widget.LinearLayout", Base: "android.view.View", Kind: sdk.KindLayout},
		{Name: "android.widget.LinearLayout.LayoutParams", Base: "", Kind: sdk.KindLayoutParams},
	}
}

func testStyleables() []sdk.Styleable {
	colorFmt, _ := sdk.LookupFormat("color")
	enumFmt, _ := sdk.LookupFormat("enum")
	return []sdk.Styleable{
		{Name: "LinearLayout", Attributes: []sdk.Attribute{
			{Name: "orientation", Formats: []sdk.AttributeFormat{enumFmt}, Enums: []sdk.ValueEnum{
				{Name: "horizontal", Value: "0"},
				{Name: "vertical", Value: "1"},
			}},
		}},
		{Name: "TextView", Attributes: []sdk.Attribute{
			{Name: "textColor", Formats: []sdk.AttributeFormat{colorFmt}},
			{Name: "gravity", Enums: []sdk.ValueEnum{
				{Name: "top", Value: "0x30"},
				{Name: "bottom", Value: "0x50"},
			}},
		}},
		{Name: "", Attributes: []sdk.Attribute{
			{Name: "textColor", Formats: []sdk.AttributeFormat{enumFmt}},
		}},
	}
}

func childNames(el *xmltree.Element) []string {
	var names []string
	for i := range el.Children {
		names = append(names, el.Children[i].Name.Local)
	}
	return names
}

func TestGenLayoutOrdering(t *testing.T) {
	var cfg Config
	root := cfg.GenLayout(testHierarchy(), testStyleables())

	// one element immediately followed by its complex type, per entry
	require.Equal(t, []string{
		"element", "complexType",
		"element", "complexType",
		"element", "complexType",
		"element", "complexType",
	}, childNames(root))
	require.Equal(t, "View", root.Children[0].Attr("", "name"))
	require.Equal(t, "View_Type", root.Children[0].Attr("", "type"))
	require.Equal(t, "View_Type", root.Children[1].Attr("", "name"))
}

func TestGenLayoutDerivation(t *testing.T) {
	var cfg Config
	root := cfg.GenLayout(testHierarchy(), testStyleables())

	bases := make(map[string]string)
	for _, ct := range root.Search(schemaNS, "complexType") {
		ext := ct.Search(schemaNS, "extension")
		require.Len(t, ext, 1, "complexType %s", ct.Attr("", "name"))
		bases[ct.Attr("", "name")] = ext[0].Attr("", "base")
	}
	require.Equal(t, map[string]string{
		"View_Type":                      "xs:anyType",
		"TextView_Type":                  "View_Type",
		"LinearLayout_Type":              "View_Type",
		"LinearLayout.LayoutParams_Type": "xs:anyType",
	}, bases)
}

func TestGenLayoutAttributeGroupRefs(t *testing.T) {
	var cfg Config
	root := cfg.GenLayout(testHierarchy(), testStyleables())

	refs := make(map[string]string)
	for _, ct := range root.Search(schemaNS, "complexType") {
		for _, g := range ct.Search(schemaNS, "attributeGroup") {
			refs[ct.Attr("", "name")] = g.Attr("", "ref")
		}
	}
	// only classes whose normalized name matches a styleable name
	// reference a group
	require.Equal(t, map[string]string{
		"TextView_Type":     "android:TextView",
		"LinearLayout_Type": "android:LinearLayout",
	}, refs)
}
