package organization

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// ActivateOrganization marks an organization active.
type ActivateOrganization struct {
	orgs ports.OrganizationRepository
}

// NewActivateOrganization builds the use case.
func NewActivateOrganization(orgs ports.OrganizationRepository) *ActivateOrganization {
	return &ActivateOrganization{orgs: orgs}
}

// Execute activates the organization and returns it.
func (uc *ActivateOrganization) Execute(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	org, err := uc.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domerrors.NotFound("organization with id %s not found", id)
	}
	org.Activate()
	if err := uc.orgs.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// DeactivateOrganization marks an organization inactive.
type DeactivateOrganization struct {
	orgs ports.OrganizationRepository
}

// NewDeactivateOrganization builds the use case.
func NewDeactivateOrganization(orgs ports.OrganizationRepository) *DeactivateOrganization {
	return &DeactivateOrganization{orgs: orgs}
}

// Execute deactivates the organization and returns it.
func (uc *DeactivateOrganization) Execute(ctx context.Context, id domain.OrganizationID) (*domain.Organization, error) {
	org, err := uc.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domerrors.NotFound("organization with id %s not found", id)
	}
	org.Deactivate()
	if err := uc.orgs.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}
