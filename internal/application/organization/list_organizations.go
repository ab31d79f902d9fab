package organization

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

// ListOrganizations returns one page of organizations with pagination
// metadata. Params are validated at the boundary before reaching here.
type ListOrganizations struct {
	orgs ports.OrganizationRepository
}

// NewListOrganizations builds the use case.
func NewListOrganizations(orgs ports.OrganizationRepository) *ListOrganizations {
	return &ListOrganizations{orgs: orgs}
}

// Execute delegates to the repository.
func (uc *ListOrganizations) Execute(ctx context.Context, params pagination.PageParams) ([]*domain.Organization, pagination.Meta, error) {
	return uc.orgs.FindPaginated(ctx, params.Page, params.PageSize)
}
