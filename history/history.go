// Package history keeps a short, newest-first list of completed conversions.
package history

import "fmt"

const (
	// DefaultCapacity is the number of entries kept when none is configured.
	DefaultCapacity = 5

	// previewLen is the number of response characters kept in an entry.
	previewLen = 100
)

// History is a bounded, deduplicated list of display strings. It is owned
// by a single session and is not safe for concurrent use.
type History struct {
	capacity int
	entries  []string
}

// New returns an empty History holding at most capacity entries. A
// non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Summarize formats a history entry for query and the response text,
// keeping only the first 100 characters of the response.
func Summarize(query, response string) string {
	r := []rune(response)
	if len(r) > previewLen {
		return fmt.Sprintf("%s → %s...", query, string(r[:previewLen]))
	}
	return fmt.Sprintf("%s → %s", query, response)
}

// Add inserts entry at the front unless an identical entry is already
// present. When the list grows past its capacity the oldest entry is
// dropped. It reports whether entry was inserted.
func (h *History) Add(entry string) bool {
	for _, e := range h.entries {
		if e == entry {
			return false
		}
	}
	h.entries = append([]string{entry}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
	return true
}

// Entries returns the entries, newest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }
