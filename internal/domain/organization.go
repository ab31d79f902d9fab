package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationDetails groups the free-text descriptive fields of an
// organization. Nil means absent.
type OrganizationDetails struct {
	Industry    *string
	Address     *string
	City        *string
	State       *string
	PostalCode  *string
	CountryCode *string
	Timezone    *string
	Currency    *string
}

// Organization is the aggregate root for a company. Fields are unexported so
// every reachable instance satisfies the value-object invariants.
type Organization struct {
	id        OrganizationID
	name      OrganizationName
	email     *Email
	phone     *Phone
	website   *URL
	details   OrganizationDetails
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewOrganization creates an organization with a fresh time-ordered id,
// created_at == updated_at (UTC), all optional fields absent, active.
func NewOrganization(name OrganizationName) *Organization {
	now := time.Now().UTC()
	return &Organization{
		id:        NewOrganizationID(uuid.Must(uuid.NewV7())),
		name:      name,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
}

// OrganizationParams carries already-validated parts for reconstitution.
type OrganizationParams struct {
	ID        OrganizationID
	Name      OrganizationName
	Email     *Email
	Phone     *Phone
	Website   *URL
	Details   OrganizationDetails
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstituteOrganization rebuilds an organization from validated parts. It
// is a pure constructor used by repository adapters and by the create use
// case to widen a new aggregate with optional fields.
func ReconstituteOrganization(p OrganizationParams) *Organization {
	return &Organization{
		id:        p.ID,
		name:      p.Name,
		email:     p.Email,
		phone:     p.Phone,
		website:   p.Website,
		details:   p.Details,
		isActive:  p.IsActive,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
}

func (o *Organization) ID() OrganizationID           { return o.id }
func (o *Organization) Name() OrganizationName       { return o.name }
func (o *Organization) Email() *Email                { return o.email }
func (o *Organization) Phone() *Phone                { return o.phone }
func (o *Organization) Website() *URL                { return o.website }
func (o *Organization) Details() OrganizationDetails { return o.details }
func (o *Organization) IsActive() bool               { return o.isActive }
func (o *Organization) CreatedAt() time.Time         { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time         { return o.updatedAt }

func (o *Organization) touch() { o.updatedAt = time.Now().UTC() }

// Activate marks the organization active and refreshes updated_at.
func (o *Organization) Activate() {
	o.isActive = true
	o.touch()
}

// Deactivate marks the organization inactive and refreshes updated_at.
func (o *Organization) Deactivate() {
	o.isActive = false
	o.touch()
}

// UpdateName replaces the name and refreshes updated_at.
func (o *Organization) UpdateName(name OrganizationName) {
	o.name = name
	o.touch()
}

// UpdateContact replaces email, phone and website (nil clears) and refreshes
// updated_at.
func (o *Organization) UpdateContact(email *Email, phone *Phone, website *URL) {
	o.email = email
	o.phone = phone
	o.website = website
	o.touch()
}

// UpdateDetails replaces the descriptive fields and refreshes updated_at.
func (o *Organization) UpdateDetails(details OrganizationDetails) {
	o.details = details
	o.touch()
}
