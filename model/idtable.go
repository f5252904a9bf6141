package model

import "golang.org/x/text/unicode/norm"

// IDTable interns external element id strings as dense integers so that
// hitboxes and groups compare by int instead of by string. Ids are
// NFC-normalized before interning; external ids come from markup
// attributes and may arrive in decomposed form.
type IDTable struct {
	names []string
	index map[string]int
}

// NewIDTable creates an empty id table.
func NewIDTable() *IDTable {
	return &IDTable{
		index: make(map[string]int),
	}
}

// Intern returns the dense integer for the given external id, assigning
// the next free integer on first sight.
func (t *IDTable) Intern(id string) int {
	id = norm.NFC.String(id)
	if n, ok := t.index[id]; ok {
		return n
	}
	n := len(t.names)
	t.names = append(t.names, id)
	t.index[id] = n
	return n
}

// Name returns the external id for a dense integer, or "" when the
// integer was never assigned.
func (t *IDTable) Name(n int) string {
	if n < 0 || n >= len(t.names) {
		return ""
	}
	return t.names[n]
}

// Len returns the number of interned ids.
func (t *IDTable) Len() int {
	return len(t.names)
}
