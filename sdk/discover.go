package sdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const platformPrefix = "android-"

// A Platform points at one installed SDK platform directory.
type Platform struct {
	// Absolute path of the platform directory.
	Dir string
	// API level parsed from the directory name.
	APILevel int
	// Release version from source.properties, if present.
	Version string
}

// WidgetsPath returns the path of the widget hierarchy listing.
func (p Platform) WidgetsPath() string {
	return filepath.Join(p.Dir, "data", "widgets.txt")
}

// AttrsPath returns the path of the attribute declaration resource.
func (p Platform) AttrsPath() string {
	return filepath.Join(p.Dir, "data", "res", "values", "attrs.xml")
}

// FindPlatform selects the highest-numbered android-N directory under
// root/platforms. The platform's release version is read from its
// source.properties file when available; a missing or malformed
// properties file leaves Version empty and is not an error.
func FindPlatform(root string) (Platform, error) {
	platforms := filepath.Join(root, "platforms")
	entries, err := os.ReadDir(platforms)
	if err != nil {
		return Platform{}, fmt.Errorf("cannot read SDK platforms directory: %v", err)
	}

	best := Platform{APILevel: -1}
	for _, ent := range entries {
		if !ent.IsDir() || !strings.HasPrefix(ent.Name(), platformPrefix) {
			continue
		}
		level, err := strconv.Atoi(strings.TrimPrefix(ent.Name(), platformPrefix))
		if err != nil {
			continue
		}
		if level > best.APILevel {
			best = Platform{Dir: filepath.Join(platforms, ent.Name()), APILevel: level}
		}
	}
	if best.APILevel < 0 {
		return Platform{}, fmt.Errorf("no platform directories found under %s", platforms)
	}
	best.Version = readVersion(filepath.Join(best.Dir, "source.properties"))
	return best, nil
}

func readVersion(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if ok && strings.TrimSpace(key) == "Platform.Version" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// CheckLibraries verifies that every extra library path given on the
// command line names an existing directory.
func CheckLibraries(paths []string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("library path %s: %v", p, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("library path %s is not a directory", p)
		}
	}
	return nil
}
