package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// RecentInquiryLimit bounds the merged inquiry list on the dashboard.
const RecentInquiryLimit = 5

// Inquiry is a message about one listing.
type Inquiry struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewInquiry validates an inquiry. userID is empty for anonymous senders.
func NewInquiry(id, propertyID, userID, name, email, phone, message string, now time.Time) (*Inquiry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	message = strings.TrimSpace(message)

	v := apperr.NewValidation()
	if v.Required("name", name) {
		v.MaxLen("name", name, 100)
	}
	if v.Required("email", email) {
		v.Email("email", email)
	}
	if v.Required("message", message) {
		v.MaxLen("message", message, 2000)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	return &Inquiry{
		ID:         id,
		PropertyID: propertyID,
		UserID:     userID,
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(phone),
		Message:    message,
		CreatedAt:  now,
	}, nil
}

// MergeRecentInquiries flattens per-property inquiry lists, sorts them
// newest first and keeps at most limit entries. Ties keep input order.
func MergeRecentInquiries(lists [][]Inquiry, limit int) []Inquiry {
	merged := make([]Inquiry, 0)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
