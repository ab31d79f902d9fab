package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorCodes(t *testing.T) {
	if InvalidValue("x").Code != CodeInvalidValue {
		t.Error("InvalidValue should carry the invalid_value code")
	}
	if BusinessRuleViolation("x").Code != CodeBusinessRuleViolation {
		t.Error("BusinessRuleViolation should carry the business_rule_violation code")
	}
	if EntityNotFound("x").Code != CodeEntityNotFound {
		t.Error("EntityNotFound should carry the entity_not_found code")
	}
	if DuplicateEntity("x").Code != CodeDuplicateEntity {
		t.Error("DuplicateEntity should carry the duplicate_entity code")
	}
}

func TestNotFound_Formats(t *testing.T) {
	err := NotFound("organization with id %s not found", "abc")
	if err.Error() != "organization with id abc not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestDatabase_NilPassthrough(t *testing.T) {
	if Database(nil) != nil {
		t.Error("Database(nil) should be nil")
	}
}

func TestDatabase_WrapsAndUnwraps(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Database(cause)

	var dbErr *DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatal("expected a *DatabaseError")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestValidationError_WithField(t *testing.T) {
	err := NewValidation("invalid request").
		WithField("name", "is required").
		WithField("email", "must be valid")
	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(err.Fields))
	}
	if err.Fields[0].Field != "name" || err.Fields[1].Field != "email" {
		t.Errorf("unexpected fields: %+v", err.Fields)
	}
}
