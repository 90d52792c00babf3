package schemagen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdkxml/android-xsd/xmltree"
)

type testLogger testing.T

func (t *testLogger) Printf(format string, v ...interface{}) {
	t.Logf(format, v...)
}

func TestGenerateWritesBothDocuments(t *testing.T) {
	outdir := filepath.Join(t.TempDir(), "out")
	var cfg Config
	cfg.Option(LogOutput((*testLogger)(t)))

	err := cfg.Generate(outdir, testHierarchy(), testStyleables())
	require.NoError(t, err)

	for _, name := range []string{AttributesFile, LayoutFile} {
		info, err := os.Stat(filepath.Join(outdir, name))
		require.NoError(t, err, name)
		require.Equal(t, os.FileMode(0644), info.Mode().Perm(), "%s permissions", name)

		data, err := os.ReadFile(filepath.Join(outdir, name))
		require.NoError(t, err, name)
		require.True(t, strings.HasPrefix(string(data), "<?xml"), "%s has no XML declaration", name)

		root, err := xmltree.Parse(data)
		require.NoError(t, err, "%s is not well formed", name)
		require.Equal(t, "schema", root.Name.Local)
		require.Equal(t, schemaNS, root.Name.Space)
	}

	// no temporary files left behind
	entries, err := os.ReadDir(outdir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestGenerateLayoutNamespaces(t *testing.T) {
	outdir := t.TempDir()
	var cfg Config
	require.NoError(t, cfg.Generate(outdir, testHierarchy(), testStyleables()))

	data, err := os.ReadFile(filepath.Join(outdir, LayoutFile))
	require.NoError(t, err)
	doc := string(data)
	// the layout schema has no target namespace, and declares the
	// android prefix for attribute group references only
	require.NotContains(t, doc, "targetNamespace")
	require.Contains(t, doc, `xmlns:android="http://schemas.android.com/apk/res/android"`)
	require.Contains(t, doc, `ref="android:LinearLayout"`)

	data, err = os.ReadFile(filepath.Join(outdir, AttributesFile))
	require.NoError(t, err)
	require.Contains(t, string(data), `targetNamespace="http://schemas.android.com/apk/res/android"`)
}

func fakeSDK(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	data := filepath.Join(root, "platforms", "android-33", "data")
	require.NoError(t, os.MkdirAll(filepath.Join(data, "res", "values"), 0755))

	widgets := "W android.widget.TextView android.view.View java.lang.Object\n" +
		"L android.widget.LinearLayout android.view.View java.lang.Object\n"
	require.NoError(t, os.WriteFile(filepath.Join(data, "widgets.txt"), []byte(widgets), 0644))

	attrs := `<resources>
  <declare-styleable name="TextView">
    <attr name="textColor" format="color" />
  </declare-styleable>
</resources>`
	require.NoError(t, os.WriteFile(filepath.Join(data, "res", "values", "attrs.xml"), []byte(attrs), 0644))
	return root
}

func TestGenCLI(t *testing.T) {
	root := fakeSDK(t)
	outdir := filepath.Join(t.TempDir(), "xsd")
	var cfg Config
	cfg.Option(LogOutput((*testLogger)(t)))

	err := cfg.GenCLI("-o", outdir, "-v", "3", root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outdir, AttributesFile))
	require.NoError(t, err)
	require.Contains(t, string(data), `name="textColor"`)

	data, err = os.ReadFile(filepath.Join(outdir, LayoutFile))
	require.NoError(t, err)
	require.Contains(t, string(data), `name="TextView_Type"`)
	require.Contains(t, string(data), `ref="android:TextView"`)
}

func TestGenCLIUsage(t *testing.T) {
	var cfg Config
	err := cfg.GenCLI()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Usage:")
}

func TestGenCLIBadLibraryPath(t *testing.T) {
	root := fakeSDK(t)
	var cfg Config
	err := cfg.GenCLI("-o", t.TempDir(), root, filepath.Join(root, "no-such-library"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no-such-library")
}

func TestGenCLIMissingWidgets(t *testing.T) {
	root := fakeSDK(t)
	require.NoError(t, os.Remove(filepath.Join(root, "platforms", "android-33", "data", "widgets.txt")))
	var cfg Config
	err := cfg.GenCLI("-o", t.TempDir(), root)
	require.Error(t, err)
}
