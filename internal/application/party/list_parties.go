package party

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

// ListParties returns one page of parties with pagination metadata.
type ListParties struct {
	parties ports.PartyRepository
}

// NewListParties builds the use case.
func NewListParties(parties ports.PartyRepository) *ListParties {
	return &ListParties{parties: parties}
}

// Execute delegates to the repository.
func (uc *ListParties) Execute(ctx context.Context, params pagination.PageParams) ([]*domain.Party, pagination.Meta, error) {
	return uc.parties.FindPaginated(ctx, params.Page, params.PageSize)
}
