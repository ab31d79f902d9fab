package domain

import (
	"time"

	"github.com/google/uuid"
)

// Party is the aggregate root for a company or a person. The party type is an
// immutable classification set at creation.
type Party struct {
	id                 PartyID
	partyType          PartyType
	displayName        DisplayName
	legalName          *LegalName
	tin                *Tin
	registrationNumber *RegistrationNumber
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

// NewParty creates a party with a fresh time-ordered id, created_at ==
// updated_at (UTC), optional fields absent, active.
func NewParty(partyType PartyType, displayName DisplayName) *Party {
	now := time.Now().UTC()
	return &Party{
		id:          NewPartyID(uuid.Must(uuid.NewV7())),
		partyType:   partyType,
		displayName: displayName,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}
}

// PartyParams carries already-validated parts for reconstitution.
type PartyParams struct {
	ID                 PartyID
	Type               PartyType
	DisplayName        DisplayName
	LegalName          *LegalName
	Tin                *Tin
	RegistrationNumber *RegistrationNumber
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ReconstituteParty rebuilds a party from validated parts; used by repository
// adapters and by the create use case to widen a new aggregate.
func ReconstituteParty(p PartyParams) *Party {
	return &Party{
		id:                 p.ID,
		partyType:          p.Type,
		displayName:        p.DisplayName,
		legalName:          p.LegalName,
		tin:                p.Tin,
		registrationNumber: p.RegistrationNumber,
		isActive:           p.IsActive,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

func (p *Party) ID() PartyID                             { return p.id }
func (p *Party) Type() PartyType                         { return p.partyType }
func (p *Party) DisplayName() DisplayName                { return p.displayName }
func (p *Party) LegalName() *LegalName                   { return p.legalName }
func (p *Party) Tin() *Tin                               { return p.tin }
func (p *Party) RegistrationNumber() *RegistrationNumber { return p.registrationNumber }
func (p *Party) IsActive() bool                          { return p.isActive }
func (p *Party) CreatedAt() time.Time                    { return p.createdAt }
func (p *Party) UpdatedAt() time.Time                    { return p.updatedAt }

func (p *Party) touch() { p.updatedAt = time.Now().UTC() }

// Activate marks the party active and refreshes updated_at.
func (p *Party) Activate() {
	p.isActive = true
	p.touch()
}

// Deactivate marks the party inactive and refreshes updated_at.
func (p *Party) Deactivate() {
	p.isActive = false
	p.touch()
}

// UpdateDisplayName replaces the display name and refreshes updated_at.
func (p *Party) UpdateDisplayName(name DisplayName) {
	p.displayName = name
	p.touch()
}

// UpdateRegistration replaces legal name, TIN and registration number (nil
// clears) and refreshes updated_at.
func (p *Party) UpdateRegistration(legalName *LegalName, tin *Tin, registrationNumber *RegistrationNumber) {
	p.legalName = legalName
	p.tin = tin
	p.registrationNumber = registrationNumber
	p.touch()
}
