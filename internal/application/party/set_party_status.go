package party

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// ActivateParty marks a party active.
type ActivateParty struct {
	parties ports.PartyRepository
}

// NewActivateParty builds the use case.
func NewActivateParty(parties ports.PartyRepository) *ActivateParty {
	return &ActivateParty{parties: parties}
}

// Execute activates the party and returns it.
func (uc *ActivateParty) Execute(ctx context.Context, id domain.PartyID) (*domain.Party, error) {
	party, err := uc.parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domerrors.NotFound("party with id %s not found", id)
	}
	party.Activate()
	if err := uc.parties.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

// DeactivateParty marks a party inactive.
type DeactivateParty struct {
	parties ports.PartyRepository
}

// NewDeactivateParty builds the use case.
func NewDeactivateParty(parties ports.PartyRepository) *DeactivateParty {
	return &DeactivateParty{parties: parties}
}

// Execute deactivates the party and returns it.
func (uc *DeactivateParty) Execute(ctx context.Context, id domain.PartyID) (*domain.Party, error) {
	party, err := uc.parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domerrors.NotFound("party with id %s not found", id)
	}
	party.Deactivate()
	if err := uc.parties.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}
