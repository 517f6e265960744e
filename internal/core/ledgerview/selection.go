package ledgerview

import "sync"

// SelectionTracker maintains the set of checked entry identities for one
// ledger view. Membership is keyed by identity values (ResolveIdentity), never
// by render keys, and is independent of which partition is currently rendered.
// All mutation goes through Select/SelectAll/Clear; rows never touch the set
// directly.
type SelectionTracker struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewSelectionTracker returns an empty tracker.
func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{ids: make(map[string]struct{})}
}

// Select marks or unmarks a single identity.
func (t *SelectionTracker) Select(id string, checked bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if checked {
		t.ids[id] = struct{}{}
	} else {
		delete(t.ids, id)
	}
}

// SelectAll marks or unmarks every given identity. Duplicates collapse; order
// is irrelevant.
func (t *SelectionTracker) SelectAll(ids []string, checked bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range ids {
		if checked {
			t.ids[id] = struct{}{}
		} else {
			delete(t.ids, id)
		}
	}
}

// Clear empties the selection.
func (t *SelectionTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ids = make(map[string]struct{})
}

// IsSelected reports whether an identity is currently checked.
func (t *SelectionTracker) IsSelected(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.ids[id]
	return ok
}

// Selected returns a copy of the checked identities in no particular order.
func (t *SelectionTracker) Selected() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	return out
}

// Count returns the number of checked identities.
func (t *SelectionTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ids)
}
