package organization

import (
	"context"
	"strings"

	"github.com/vanphubinh/erp-api/internal/application/ports"
	"github.com/vanphubinh/erp-api/internal/domain"
)

// CreateOrganizationInput carries the raw field values from the boundary.
// Empty-after-trim optionals are treated as "not provided".
type CreateOrganizationInput struct {
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

// CreateOrganization validates input, builds the aggregate and persists it.
type CreateOrganization struct {
	orgs ports.OrganizationRepository
}

// NewCreateOrganization builds the use case.
func NewCreateOrganization(orgs ports.OrganizationRepository) *CreateOrganization {
	return &CreateOrganization{orgs: orgs}
}

// Execute creates the organization and returns the fully populated aggregate.
// The first invalid field aborts the operation.
func (uc *CreateOrganization) Execute(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error) {
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

	// Construct with the required field, then widen with the optionals
	// through reconstitution so id and timestamps come from one place.
	base := domain.NewOrganization(name)
	org := domain.ReconstituteOrganization(domain.OrganizationParams{
		ID:      base.ID(),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Website: website,
		Details: domain.OrganizationDetails{
			Industry:    optionalString(input.Industry),
			Address:     optionalString(input.Address),
			City:        optionalString(input.City),
			State:       optionalString(input.State),
			PostalCode:  optionalString(input.PostalCode),
			CountryCode: optionalString(input.CountryCode),
			Timezone:    optionalString(input.Timezone),
			Currency:    optionalString(input.Currency),
		},
		IsActive:  base.IsActive(),
		CreatedAt: base.CreatedAt(),
		UpdatedAt: base.UpdatedAt(),
	})

	if err := uc.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func optionalString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

func optionalEmail(raw string) (*domain.Email, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	email, err := domain.NewEmail(raw)
	if err != nil {
		return nil, err
	}
	return &email, nil
}

func optionalPhone(raw string) (*domain.Phone, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	phone, err := domain.NewPhone(raw)
	if err != nil {
		return nil, err
	}
	return &phone, nil
}

func optionalURL(raw string) (*domain.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	url, err := domain.NewURL(raw)
	if err != nil {
		return nil, err
	}
	return &url, nil
}
