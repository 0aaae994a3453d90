// File: pkg/merge/ignore.go
package merge

import "strings"

// IgnoreSet is a set of directory names excluded from traversal along with
// their whole subtree. Names are compared exactly against a directory's base
// name, never against its path.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds an IgnoreSet from names. Blank names are dropped.
func NewIgnoreSet(names ...string) IgnoreSet {
	set := make(IgnoreSet, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is ignored.
func (s IgnoreSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}
