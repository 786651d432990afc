package domain

// ChangeTracker tracks which fields have been modified.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirtyFields: make(map[string]bool)}
}

func (ct *ChangeTracker) MarkDirty(field string) { ct.dirtyFields[field] = true }

func (ct *ChangeTracker) Dirty(field string) bool { return ct.dirtyFields[field] }

func (ct *ChangeTracker) HasChanges() bool { return len(ct.dirtyFields) > 0 }
