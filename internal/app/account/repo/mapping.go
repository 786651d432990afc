package repo

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/models/m_user"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func dataToUser(d *m_user.Data) (*domain.User, error) {
	snap := domain.UserSnapshot{
		ID:           d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone.StringVal,
		Role:         auth.Role(d.Role),
		Active:       d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	if d.IsAgent {
		p := &domain.AgentProfile{
			LicenseNumber:   d.LicenseNumber.StringVal,
			ExperienceYears: d.ExperienceYears.Int64,
			Specializations: d.Specializations,
			Bio:             d.Bio.StringVal,
			Phone:           d.AgentPhone.StringVal,
			Address: domain.AgentAddress{
				Street: d.AgentStreet.StringVal,
				City:   d.AgentCity.StringVal,
				State:  d.AgentState.StringVal,
			},
			ProfileImage:     d.ProfileImage.StringVal,
			Rating:           domain.Rating{Average: d.RatingAverage, Count: d.RatingCount},
			TransactionCount: d.TransactionCount,
			Verified:         d.Verified,
		}
		docs, err := decodeDocuments(d.VerificationDocuments)
		if err != nil {
			return nil, err
		}
		p.VerificationDocuments = docs
		snap.Agent = p
	}

	return domain.ReconstructUser(snap), nil
}

func userToData(u *domain.User) (*m_user.Data, error) {
	d := &m_user.Data{
		UserID:       u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Phone:        nullString(u.Phone()),
		Role:         string(u.Role()),
		IsAgent:      u.IsAgent(),
		IsActive:     u.Active(),
	}
	if p := u.AgentProfile(); p != nil {
		docs, err := encodeDocuments(p.VerificationDocuments)
		if err != nil {
			return nil, err
		}
		d.LicenseNumber = nullString(p.LicenseNumber)
		d.ExperienceYears = spanner.NullInt64{Int64: p.ExperienceYears, Valid: true}
		d.Specializations = specializations(p)
		d.Bio = nullString(p.Bio)
		d.AgentPhone = nullString(p.Phone)
		d.AgentStreet = nullString(p.Address.Street)
		d.AgentCity = nullString(p.Address.City)
		d.AgentState = nullString(p.Address.State)
		d.ProfileImage = nullString(p.ProfileImage)
		d.VerificationDocuments = docs
		d.RatingAverage = p.Rating.Average
		d.RatingCount = p.Rating.Count
		d.TransactionCount = p.TransactionCount
		d.Verified = p.Verified
	}
	return d, nil
}

// agentColumns maps the client-editable profile fields to columns.
func agentColumns(p *domain.AgentProfile) (map[string]interface{}, error) {
	docs, err := encodeDocuments(p.VerificationDocuments)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		m_user.LicenseNumber:         nullString(p.LicenseNumber),
		m_user.ExperienceYears:       spanner.NullInt64{Int64: p.ExperienceYears, Valid: true},
		m_user.Specializations:       specializations(p),
		m_user.Bio:                   nullString(p.Bio),
		m_user.AgentPhone:            nullString(p.Phone),
		m_user.AgentStreet:           nullString(p.Address.Street),
		m_user.AgentCity:             nullString(p.Address.City),
		m_user.AgentState:            nullString(p.Address.State),
		m_user.ProfileImage:          nullString(p.ProfileImage),
		m_user.VerificationDocuments: docs,
	}, nil
}

func specializations(p *domain.AgentProfile) []string {
	if p.Specializations == nil {
		return []string{}
	}
	return p.Specializations
}

func encodeDocuments(docs []domain.Document) (spanner.NullJSON, error) {
	if len(docs) == 0 {
		return spanner.NullJSON{}, nil
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return spanner.NullJSON{}, fmt.Errorf("failed to encode verification documents: %w", err)
	}
	return spanner.NullJSON{Value: json.RawMessage(raw), Valid: true}, nil
}

func decodeDocuments(j spanner.NullJSON) ([]domain.Document, error) {
	if !j.Valid || j.Value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(j.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to read verification documents: %w", err)
	}
	var docs []domain.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode verification documents: %w", err)
	}
	return docs, nil
}
