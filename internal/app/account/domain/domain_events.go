package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// UserRegisteredEvent is emitted when an account is created.
type UserRegisteredEvent struct {
	UserID       string    `json:"userId"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func (e *UserRegisteredEvent) EventType() string   { return "user.registered" }
func (e *UserRegisteredEvent) AggregateID() string { return e.UserID }

// AgentRatedEvent is emitted for every accepted rating.
type AgentRatedEvent struct {
	AgentID string    `json:"agentId"`
	RaterID string    `json:"raterId"`
	Rating  int       `json:"rating"`
	Average float64   `json:"average"`
	Count   int64     `json:"count"`
	RatedAt time.Time `json:"ratedAt"`
}

func (e *AgentRatedEvent) EventType() string   { return "agent.rated" }
func (e *AgentRatedEvent) AggregateID() string { return e.AgentID }

// AgentVerifiedEvent is emitted when an admin changes the verified flag.
type AgentVerifiedEvent struct {
	AgentID   string    `json:"agentId"`
	Verified  bool      `json:"verified"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

func (e *AgentVerifiedEvent) EventType() string   { return "agent.verified" }
func (e *AgentVerifiedEvent) AggregateID() string { return e.AgentID }
