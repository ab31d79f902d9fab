package organization

import (
	"context"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// UpdateOrganizationInput carries the full replacement field set. Empty
// optionals clear the stored value.
type UpdateOrganizationInput struct {
	Name        string
	Email       string
	Phone       string
	Website     string
	Industry    string
	Address     string
	City        string
	State       string
	PostalCode  string
	CountryCode string
	Timezone    string
	Currency    string
}

// UpdateOrganization loads the aggregate, applies validated changes and
// persists. The load is what surfaces NotFound for a missing id; the
// repository Update itself stays existence-agnostic.
type UpdateOrganization struct {
	orgs ports.OrganizationRepository
}

// NewUpdateOrganization builds the use case.
func NewUpdateOrganization(orgs ports.OrganizationRepository) *UpdateOrganization {
	return &UpdateOrganization{orgs: orgs}
}

// Execute updates the organization and returns it.
func (uc *UpdateOrganization) Execute(ctx context.Context, id domain.OrganizationID, input UpdateOrganizationInput) (*domain.Organization, error) {
	org, err := uc.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domerrors.NotFound("organization with id %s not found", id)
	}

	name, err := domain.NewOrganizationName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := optionalEmail(input.Email)
	if err != nil {
		return nil, err
	}
	phone, err := optionalPhone(input.Phone)
	if err != nil {
		return nil, err
	}
	website, err := optionalURL(input.Website)
	if err != nil {
		return nil, err
	}

	org.UpdateName(name)
	org.UpdateContact(email, phone, website)
	org.UpdateDetails(domain.OrganizationDetails{
		Industry:    optionalString(input.Industry),
		Address:     optionalString(input.Address),
		City:        optionalString(input.City),
		State:       optionalString(input.State),
		PostalCode:  optionalString(input.PostalCode),
		CountryCode: optionalString(input.CountryCode),
		Timezone:    optionalString(input.Timezone),
		Currency:    optionalString(input.Currency),
	})

	if err := uc.orgs.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}
