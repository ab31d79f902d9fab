package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// PartyID is a value object for party identity.
type PartyID struct{ uuid.UUID }

// NewPartyID creates a PartyID from uuid.
func NewPartyID(id uuid.UUID) PartyID { return PartyID{UUID: id} }

// String returns the canonical string form.
func (p PartyID) String() string { return p.UUID.String() }

// PartyType classifies a party as a company or a person. The canonical string
// form is lowercase.
type PartyType string

const (
	PartyTypeCompany PartyType = "company"
	PartyTypePerson  PartyType = "person"
)

// ParsePartyType parses s case-insensitively into a PartyType.
func ParsePartyType(s string) (PartyType, error) {
	switch strings.ToLower(s) {
	case "company":
		return PartyTypeCompany, nil
	case "person":
		return PartyTypePerson, nil
	default:
		return "", domerrors.InvalidValue(fmt.Sprintf("invalid party type: %s. Must be 'company' or 'person'", s))
	}
}

func (t PartyType) String() string { return string(t) }

// DisplayName is a validated party display name.
type DisplayName struct{ value string }

// NewDisplayName trims raw and validates it: non-empty, at most 255 chars.
func NewDisplayName(raw string) (DisplayName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return DisplayName{}, domerrors.InvalidValue("display name cannot be empty")
	}
	if len(name) > 255 {
		return DisplayName{}, domerrors.InvalidValue("display name too long (max 255 chars)")
	}
	return DisplayName{value: name}, nil
}

func (n DisplayName) Value() string  { return n.value }
func (n DisplayName) String() string { return n.value }

// LegalName is a validated legal/registered name.
type LegalName struct{ value string }

// NewLegalName trims raw and validates it: non-empty, at most 255 chars.
func NewLegalName(raw string) (LegalName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return LegalName{}, domerrors.InvalidValue("legal name cannot be empty")
	}
	if len(name) > 255 {
		return LegalName{}, domerrors.InvalidValue("legal name too long (max 255 chars)")
	}
	return LegalName{value: name}, nil
}

func (n LegalName) Value() string  { return n.value }
func (n LegalName) String() string { return n.value }

// Tin is a tax identification number: non-empty, at most 50 chars.
type Tin struct{ value string }

// NewTin trims raw and validates it.
func NewTin(raw string) (Tin, error) {
	tin := strings.TrimSpace(raw)
	if tin == "" {
		return Tin{}, domerrors.InvalidValue("TIN cannot be empty")
	}
	if len(tin) > 50 {
		return Tin{}, domerrors.InvalidValue("TIN too long (max 50 chars)")
	}
	return Tin{value: tin}, nil
}

func (t Tin) Value() string  { return t.value }
func (t Tin) String() string { return t.value }

// RegistrationNumber is a business registration number: non-empty, at most
// 100 chars.
type RegistrationNumber struct{ value string }

// NewRegistrationNumber trims raw and validates it.
func NewRegistrationNumber(raw string) (RegistrationNumber, error) {
	number := strings.TrimSpace(raw)
	if number == "" {
		return RegistrationNumber{}, domerrors.InvalidValue("registration number cannot be empty")
	}
	if len(number) > 100 {
		return RegistrationNumber{}, domerrors.InvalidValue("registration number too long (max 100 chars)")
	}
	return RegistrationNumber{value: number}, nil
}

func (r RegistrationNumber) Value() string  { return r.value }
func (r RegistrationNumber) String() string { return r.value }
