package party

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
)

// DeleteParty hard-deletes by id; deleting a missing id succeeds.
type DeleteParty struct {
	parties ports.PartyRepository
}

// NewDeleteParty builds the use case.
func NewDeleteParty(parties ports.PartyRepository) *DeleteParty {
	return &DeleteParty{parties: parties}
}

// Execute deletes the party.
func (uc *DeleteParty) Execute(ctx context.Context, id domain.PartyID) error {
	return uc.parties.Delete(ctx, id)
}
