package organization

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
)

// DeleteOrganization hard-deletes by id. Deleting a missing id succeeds, so
// the operation is idempotent from the caller's perspective.
type DeleteOrganization struct {
	orgs ports.OrganizationRepository
}

// NewDeleteOrganization builds the use case.
func NewDeleteOrganization(orgs ports.OrganizationRepository) *DeleteOrganization {
	return &DeleteOrganization{orgs: orgs}
}

// Execute deletes the organization.
func (uc *DeleteOrganization) Execute(ctx context.Context, id domain.OrganizationID) error {
	return uc.orgs.Delete(ctx, id)
}
