package domain

import (
	"sort"
	"strings"
)

// TeachingNotes maps skill titles to instructor guidance.
//
// Lookup order: exact title, then case-insensitive exact title, then any key that
// contains or is contained by the title (case-insensitive). Among several partial
// matches the longest key wins; equal lengths fall back to the lexicographically
// smaller key, so the answer never depends on map iteration order.
type TeachingNotes struct {
	notes map[string]string
	keys  []string // sorted: longest first, then lexicographic
}

// NewTeachingNotes builds a lookup from a title -> notes mapping. Empty titles are ignored.
func NewTeachingNotes(notes map[string]string) *TeachingNotes {
	tn := &TeachingNotes{notes: make(map[string]string, len(notes))}
	for k, v := range notes {
		if strings.TrimSpace(k) == "" {
			continue
		}
		tn.notes[k] = v
		tn.keys = append(tn.keys, k)
	}
	sort.Slice(tn.keys, func(i, j int) bool {
		if len(tn.keys[i]) != len(tn.keys[j]) {
			return len(tn.keys[i]) > len(tn.keys[j])
		}
		return tn.keys[i] < tn.keys[j]
	})
	return tn
}

// Len returns the number of titles with notes.
func (t *TeachingNotes) Len() int {
	return len(t.notes)
}

// Find returns the notes for a skill title.
func (t *TeachingNotes) Find(title string) (string, bool) {
	if t == nil || title == "" {
		return "", false
	}
	if notes, ok := t.notes[title]; ok {
		return notes, true
	}
	lowered := strings.ToLower(title)
	for _, k := range t.keys {
		if strings.ToLower(k) == lowered {
			return t.notes[k], true
		}
	}
	for _, k := range t.keys {
		lk := strings.ToLower(k)
		if strings.Contains(lowered, lk) || strings.Contains(lk, lowered) {
			return t.notes[k], true
		}
	}
	return "", false
}
