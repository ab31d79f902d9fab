package domain

import (
	"strings"

	"github.com/google/uuid"

	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// OrganizationID is a value object for organization identity.
type OrganizationID struct{ uuid.UUID }

// NewOrganizationID creates an OrganizationID from uuid.
func NewOrganizationID(id uuid.UUID) OrganizationID { return OrganizationID{UUID: id} }

// String returns the canonical string form.
func (o OrganizationID) String() string { return o.UUID.String() }

// OrganizationName is a validated organization name. Construction is the only
// validation point; a constructed name always satisfies the rule.
type OrganizationName struct{ value string }

// NewOrganizationName trims raw and validates it: non-empty, at most 255 chars.
func NewOrganizationName(raw string) (OrganizationName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return OrganizationName{}, domerrors.InvalidValue("organization name cannot be empty")
	}
	if len(name) > 255 {
		return OrganizationName{}, domerrors.InvalidValue("organization name too long (max 255 chars)")
	}
	return OrganizationName{value: name}, nil
}

func (n OrganizationName) Value() string  { return n.value }
func (n OrganizationName) String() string { return n.value }

// Email is a loosely validated email address: must contain '@' and be at
// least 3 chars after trimming. No full RFC check.
type Email struct{ value string }

// NewEmail trims raw and validates it.
func NewEmail(raw string) (Email, error) {
	email := strings.TrimSpace(raw)
	if !strings.Contains(email, "@") || len(email) < 3 {
		return Email{}, domerrors.InvalidValue("invalid email")
	}
	return Email{value: email}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

// Phone is a non-empty phone number. No format check.
type Phone struct{ value string }

// NewPhone trims raw and validates it.
func NewPhone(raw string) (Phone, error) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return Phone{}, domerrors.InvalidValue("phone cannot be empty")
	}
	return Phone{value: phone}, nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }

// URL is a website address starting with http:// or https://.
type URL struct{ value string }

// NewURL trims raw and validates the scheme.
func NewURL(raw string) (URL, error) {
	url := strings.TrimSpace(raw)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return URL{}, domerrors.InvalidValue("invalid URL")
	}
	return URL{value: url}, nil
}

func (u URL) Value() string  { return u.value }
func (u URL) String() string { return u.value }
