package party

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// GetParty looks a party up by id, turning absence into NotFound.
type GetParty struct {
	parties ports.PartyRepository
}

// NewGetParty builds the use case.
func NewGetParty(parties ports.PartyRepository) *GetParty {
	return &GetParty{parties: parties}
}

// Execute returns the party or NotFound.
func (uc *GetParty) Execute(ctx context.Context, id domain.PartyID) (*domain.Party, error) {
	party, err := uc.parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domerrors.NotFound("party with id %s not found", id)
	}
	return party, nil
}
