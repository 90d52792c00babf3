// The android-xsd command generates two XML Schema documents from an
// installed Android SDK: android-attributes.xsd, describing the
// android:* resource attributes, and android-layout.xsd, describing
// the widget element hierarchy. The schemas can be used to validate
// or auto-complete Android layout XML.
//
// Usage:
//
//	android-xsd [-o dir] [-v level] sdkroot [libpath ...]
//
// The highest-numbered platform under sdkroot/platforms is used. Any
// additional libpath arguments must name existing directories.
package main

import (
	"log"
	"os"

	"github.com/sdkxml/android-xsd/schemagen"
)

func main() {
	log.SetFlags(0)
	var cfg schemagen.Config
	cfg.Option(schemagen.LogOutput(log.New(os.Stderr, "", 0)))

	if err := cfg.GenCLI(os.Args[1:]...); err != nil {
		log.Fatal(err)
	}
}
