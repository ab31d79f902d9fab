package party

import (
	"context"
	"strings"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
)

// CreatePartyInput carries the raw field values from the boundary. PartyType
// and DisplayName are required; empty-after-trim optionals are absent.
type CreatePartyInput struct {
	PartyType          string
	DisplayName        string
	LegalName          string
	Tin                string
	RegistrationNumber string
}

// CreateParty validates input, builds the aggregate and persists it.
type CreateParty struct {
	parties ports.PartyRepository
}

// NewCreateParty builds the use case.
func NewCreateParty(parties ports.PartyRepository) *CreateParty {
	return &CreateParty{parties: parties}
}

// Execute creates the party and returns the fully populated aggregate. The
// first invalid field aborts the operation.
func (uc *CreateParty) Execute(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	partyType, err := domain.ParsePartyType(input.PartyType)
	if err != nil {
		return nil, err
	}
	displayName, err := domain.NewDisplayName(input.DisplayName)
	if err != nil {
		return nil, err
	}

	legalName, err := optionalLegalName(input.LegalName)
	if err != nil {
		return nil, err
	}
	tin, err := optionalTin(input.Tin)
	if err != nil {
		return nil, err
	}
	registrationNumber, err := optionalRegistrationNumber(input.RegistrationNumber)
	if err != nil {
		return nil, err
	}

	base := domain.NewParty(partyType, displayName)
	party := domain.ReconstituteParty(domain.PartyParams{
		ID:                 base.ID(),
		Type:               partyType,
		DisplayName:        displayName,
		LegalName:          legalName,
		Tin:                tin,
		RegistrationNumber: registrationNumber,
		IsActive:           base.IsActive(),
		CreatedAt:          base.CreatedAt(),
		UpdatedAt:          base.UpdatedAt(),
	})

	if err := uc.parties.Create(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func optionalLegalName(raw string) (*domain.LegalName, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	name, err := domain.NewLegalName(raw)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

func optionalTin(raw string) (*domain.Tin, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	tin, err := domain.NewTin(raw)
	if err != nil {
		return nil, err
	}
	return &tin, nil
}

func optionalRegistrationNumber(raw string) (*domain.RegistrationNumber, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	number, err := domain.NewRegistrationNumber(raw)
	if err != nil {
		return nil, err
	}
	return &number, nil
}
