package sdk

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// The hierarchy resource terminates every chain at java.lang.Object,
// which is not modeled; a class whose parent is Object has no
// explicit base.
const rootClass = "java.lang.Object"

// ParseHierarchy reads the widgets listing, where each non-empty line
// is a role code ('L' layout, 'P' layout params, 'W' widget, anything
// else other) followed by a space-separated chain of fully qualified
// class names from most derived to Object.
//
// Each chain is walked pairwise and a TypeInfo is registered per
// previously unseen class name. The walk stops at the first name that
// is already registered, since the rest of the chain was captured
// when that name was first seen. The final name of a chain is only
// ever consumed as a parent reference, never registered itself.
// Entries are returned in order of first appearance.
func ParseHierarchy(r io.Reader) ([]TypeInfo, error) {
	var (
		types []TypeInfo
		seen  = make(map[string]bool)
		sc    = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		kind := lineKind(line[0])
		names := strings.Fields(line[1:])
		for i := 0; i+1 < len(names); i++ {
			if seen[names[i]] {
				break
			}
			seen[names[i]] = true
			base := names[i+1]
			if base == rootClass {
				base = ""
			}
			types = append(types, TypeInfo{Name: names[i], Base: base, Kind: kind})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

func lineKind(code byte) Kind {
	switch code {
	case 'L':
		return KindLayout
	case 'P':
		return KindLayoutParams
	case 'W':
		return KindWidget
	}
	return KindOther
}

// LoadHierarchy parses the widgets resource at the given path.
func LoadHierarchy(path string) ([]TypeInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseHierarchy(f)
}
