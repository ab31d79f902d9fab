package party

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// UpdatePartyInput carries the full replacement field set. The party type is
// an immutable classification and cannot be changed here.
type UpdatePartyInput struct {
	DisplayName        string
	LegalName          string
	Tin                string
	RegistrationNumber string
}

// UpdateParty loads the aggregate, applies validated changes and persists.
type UpdateParty struct {
	parties ports.PartyRepository
}

// NewUpdateParty builds the use case.
func NewUpdateParty(parties ports.PartyRepository) *UpdateParty {
	return &UpdateParty{parties: parties}
}

// Execute updates the party and returns it.
func (uc *UpdateParty) Execute(ctx context.Context, id domain.PartyID, input UpdatePartyInput) (*domain.Party, error) {
	party, err := uc.parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domerrors.NotFound("party with id %s not found", id)
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

	party.UpdateDisplayName(displayName)
	party.UpdateRegistration(legalName, tin, registrationNumber)

	if err := uc.parties.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}
