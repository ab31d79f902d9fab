package ports

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/domain"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

// OrganizationRepository defines persistence for organizations. Adapters own
// the row-to-domain mapping and must re-run value-object validation when
// reconstituting stored rows.
//
// Update and Delete succeed silently when the id does not exist; FindByID
// returns (nil, nil) when absent. FindPaginated issues a count query and a
// page query ordered by created_at descending on the same pool, without a
// shared snapshot.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	Update(ctx context.Context, org *domain.Organization) error
	FindByID(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error)
	FindPaginated(ctx context.Context, page, pageSize int) ([]*domain.Organization, pagination.Meta, error)
	Delete(ctx context.Context, id domain.OrganizationID) error
}

// PartyRepository defines persistence for parties, with the same contract as
// OrganizationRepository.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	Update(ctx context.Context, party *domain.Party) error
	FindByID(ctx context.Context, id domain.PartyID) (*domain.Party, error)
	FindPaginated(ctx context.Context, page, pageSize int) ([]*domain.Party, pagination.Meta, error)
	Delete(ctx context.Context, id domain.PartyID) error
}
