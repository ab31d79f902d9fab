package organization

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// GetOrganization looks an organization up by id. A missing row becomes a
// NotFound error here; the repository itself only reports absence as nil.
type GetOrganization struct {
	orgs ports.OrganizationRepository
}

// NewGetOrganization builds the use case.
func NewGetOrganization(orgs ports.OrganizationRepository) *GetOrganization {
	return &GetOrganization{orgs: orgs}
}

// Execute returns the organization or NotFound.
func (uc *GetOrganization) Execute(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	org, err := uc.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domerrors.NotFound("organization with id %s not found", id)
	}
	return org, nil
}
