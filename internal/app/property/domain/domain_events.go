package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// PropertyCreatedEvent is emitted when a listing is created.
type PropertyCreatedEvent struct {
	PropertyID string    `json:"propertyId"`
	AgentID    string    `json:"agentId"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Price      string    `json:"price"`
	Currency   string    `json:"currency"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e *PropertyCreatedEvent) EventType() string   { return "property.created" }
func (e *PropertyCreatedEvent) AggregateID() string { return e.PropertyID }

// PropertyUpdatedEvent is emitted once per update with the fields it touched.
type PropertyUpdatedEvent struct {
	PropertyID string    `json:"propertyId"`
	Fields     []string  `json:"fields"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (e *PropertyUpdatedEvent) EventType() string   { return "property.updated" }
func (e *PropertyUpdatedEvent) AggregateID() string { return e.PropertyID }

// PropertyStatusChangedEvent is emitted when the status changes.
type PropertyStatusChangedEvent struct {
	PropertyID string    `json:"propertyId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ChangedAt  time.Time `json:"changedAt"`
}

func (e *PropertyStatusChangedEvent) EventType() string   { return "property.status_changed" }
func (e *PropertyStatusChangedEvent) AggregateID() string { return e.PropertyID }

// PropertyPriceChangedEvent is emitted when the price amount or currency changes.
type PropertyPriceChangedEvent struct {
	PropertyID string    `json:"propertyId"`
	OldPrice   string    `json:"oldPrice"`
	NewPrice   string    `json:"newPrice"`
	Currency   string    `json:"currency"`
	ChangedAt  time.Time `json:"changedAt"`
}

func (e *PropertyPriceChangedEvent) EventType() string   { return "property.price_changed" }
func (e *PropertyPriceChangedEvent) AggregateID() string { return e.PropertyID }

// PropertyImagesChangedEvent is emitted when images are added, removed or re-ranked.
type PropertyImagesChangedEvent struct {
	PropertyID     string    `json:"propertyId"`
	ImageCount     int       `json:"imageCount"`
	PrimaryImageID string    `json:"primaryImageId,omitempty"`
	ChangedAt      time.Time `json:"changedAt"`
}

func (e *PropertyImagesChangedEvent) EventType() string   { return "property.images_changed" }
func (e *PropertyImagesChangedEvent) AggregateID() string { return e.PropertyID }

// PropertyDeletedEvent is emitted when a listing is removed.
type PropertyDeletedEvent struct {
	PropertyID string    `json:"propertyId"`
	DeletedBy  string    `json:"deletedBy"`
	DeletedAt  time.Time `json:"deletedAt"`
}

func (e *PropertyDeletedEvent) EventType() string   { return "property.deleted" }
func (e *PropertyDeletedEvent) AggregateID() string { return e.PropertyID }

// InquirySubmittedEvent is emitted when someone asks about a listing.
type InquirySubmittedEvent struct {
	PropertyID  string    `json:"propertyId"`
	InquiryID   string    `json:"inquiryId"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (e *InquirySubmittedEvent) EventType() string   { return "property.inquiry_submitted" }
func (e *InquirySubmittedEvent) AggregateID() string { return e.PropertyID }
