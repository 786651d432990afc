package domain

// ChangeTracker records which user fields were modified.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

// NewChangeTracker creates a new ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirtyFields: make(map[string]bool)}
}

func (ct *ChangeTracker) MarkDirty(field string) { ct.dirtyFields[field] = true }

func (ct *ChangeTracker) Dirty(field string) bool { return ct.dirtyFields[field] }

func (ct *ChangeTracker) HasChanges() bool { return len(ct.dirtyFields) > 0 }
