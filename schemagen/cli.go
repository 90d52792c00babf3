package schemagen

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/sdkxml/android-xsd/sdk"
	"github.com/sdkxml/android-xsd/xmltree"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// Generate writes both schema documents to outdir, creating the
// directory if needed. Each document is written to a temporary file
// and renamed into place, so a failed run never leaves a truncated
// schema behind.
func (cfg *Config) Generate(outdir string, types []sdk.TypeInfo, styleables []sdk.Styleable) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	documents := []struct {
		name string
		root *xmltree.Element
	}{
		{AttributesFile, cfg.GenAttributes(styleables)},
		{LayoutFile, cfg.GenLayout(types, styleables)},
	}
	for _, doc := range documents {
		path := filepath.Join(outdir, doc.name)
		if err := writeDocument(path, doc.root); err != nil {
			return fmt.Errorf("writing %s: %v", path, err)
		}
		cfg.logf("wrote %s", path)
	}
	return nil
}

func writeDocument(path string, root *xmltree.Element) error {
	dir, base := filepath.Split(path)
	f, err := os.CreateTemp(dir, "."+base+"-*")
	if err != nil {
		return err
	}
	// CreateTemp makes the file 0600; the schemas are for any
	// consumer to read.
	err = f.Chmod(0644)
	if err == nil {
		err = encodeDocument(f, root)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(f.Name(), path)
	}
	if err != nil {
		os.Remove(f.Name())
	}
	return err
}

func encodeDocument(f *os.File, root *xmltree.Element) error {
	if _, err := f.WriteString(xmlHeader); err != nil {
		return err
	}
	if err := xmltree.EncodeIndent(f, root, "", "  "); err != nil {
		return err
	}
	_, err := f.WriteString("\n")
	return err
}

// GenCLI generates both schemas from an SDK installation. It is the
// whole body of the android-xsd command behind a testable entry
// point; the arguments are the same as the command's.
func (cfg *Config) GenCLI(arguments ...string) error {
	var (
		fs      = flag.NewFlagSet("android-xsd", flag.ExitOnError)
		outdir  = fs.String("o", "xsd", "output directory for the generated schemas")
		verbose = fs.Int("v", 0, "logging verbosity")
	)
	fs.Parse(arguments)
	if fs.NArg() < 1 {
		return errors.New("Usage: android-xsd [-o dir] [-v level] sdkroot [libpath ...]")
	}
	if *verbose > 0 {
		cfg.Option(LogLevel(*verbose))
	}

	if err := sdk.CheckLibraries(fs.Args()[1:]); err != nil {
		return err
	}
	platform, err := sdk.FindPlatform(fs.Arg(0))
	if err != nil {
		return err
	}
	cfg.logf("using platform %s (API %d, release %q)", platform.Dir, platform.APILevel, platform.Version)

	types, err := sdk.LoadHierarchy(platform.WidgetsPath())
	if err != nil {
		return err
	}
	styleables, err := sdk.LoadAttrs(platform.AttrsPath())
	if err != nil {
		return err
	}
	cfg.logf("loaded %d types, %d styleables", len(types), len(styleables))
	cfg.debugf("hierarchy model: %s", spew.Sdump(types))
	cfg.debugf("styleable model: %s", spew.Sdump(styleables))

	return cfg.Generate(*outdir, types, styleables)
}
