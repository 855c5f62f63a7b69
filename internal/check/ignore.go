package check

import (
	"bufio"
	"io"
	"strings"
)

// IgnoreSet is the immutable set of header error names excluded from checks.
// The zero value is an empty set.
type IgnoreSet struct {
	names map[string]struct{}
}

// NewIgnoreSet builds a set from names.
func NewIgnoreSet(names ...string) IgnoreSet {
	set := IgnoreSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		set.names[n] = struct{}{}
	}
	return set
}

// ParseIgnoreList reads one name per line. Line terminators are dropped and
// nothing else is trimmed.
func ParseIgnoreList(r io.Reader) (IgnoreSet, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		names = append(names, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return IgnoreSet{}, err
	}
	return NewIgnoreSet(names...), nil
}

// Contains reports whether name is ignored.
func (s IgnoreSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set.
func (s IgnoreSet) Len() int {
	return len(s.names)
}
