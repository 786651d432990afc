package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ContactSubmittedEvent is emitted for every new submission.
type ContactSubmittedEvent struct {
	ContactID   string    `json:"contactId"`
	Category    string    `json:"category"`
	Subject     string    `json:"subject"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (e *ContactSubmittedEvent) EventType() string   { return "contact.submitted" }
func (e *ContactSubmittedEvent) AggregateID() string { return e.ContactID }

// ContactStatusChangedEvent is emitted when triage moves a submission.
type ContactStatusChangedEvent struct {
	ContactID string    `json:"contactId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

func (e *ContactStatusChangedEvent) EventType() string   { return "contact.status_changed" }
func (e *ContactStatusChangedEvent) AggregateID() string { return e.ContactID }
