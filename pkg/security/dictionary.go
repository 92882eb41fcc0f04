package security

import (
	"sort"
	"strings"
	"sync"
)

// Dictionary is a read-only set of lowercase entries that must not appear
// inside a password. It is safe for concurrent use once built.
type Dictionary struct {
	entries []string
	set     map[string]struct{}
}

var (
	defaultDictOnce sync.Once
	defaultDict     *Dictionary
)

// DefaultDictionary returns the shared dictionary of common passwords and
// first names. It is built on first use and never modified.
func DefaultDictionary() *Dictionary {
	defaultDictOnce.Do(func() {
		defaultDict = NewDictionary(commonPasswords...)
	})
	return defaultDict
}

// NewDictionary builds a dictionary from entries. Entries are trimmed and
// lowercased; blanks and duplicates are dropped.
func NewDictionary(entries ...string) *Dictionary {
	d := &Dictionary{
		entries: make([]string, 0, len(entries)),
		set:     make(map[string]struct{}, len(entries)),
	}
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, dup := d.set[e]; dup {
			continue
		}
		d.set[e] = struct{}{}
		d.entries = append(d.entries, e)
	}
	sort.Strings(d.entries)
	return d
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Contains reports an exact (case-insensitive) entry match.
func (d *Dictionary) Contains(entry string) bool {
	if d == nil {
		return false
	}
	_, ok := d.set[strings.ToLower(entry)]
	return ok
}

// MatchIn returns the first entry, in sorted order, found inside the
// lowercased candidate.
func (d *Dictionary) MatchIn(candidate string) (string, bool) {
	if d == nil || candidate == "" {
		return "", false
	}
	lower := strings.ToLower(candidate)
	for _, e := range d.entries {
		if strings.Contains(lower, e) {
			return e, true
		}
	}
	return "", false
}
