package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

// successResponse wraps a payload as { "data": ..., "meta": {...} }.
type successResponse struct {
	Data any   `json:"data"`
	Meta *meta `json:"meta,omitempty"`
}

type meta struct {
	Pagination *pagination.Meta `json:"pagination,omitempty"`
	Timestamp  *string          `json:"timestamp,omitempty"`
}

// problem is an RFC 7807 style error document.
type problem struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status"`
	Detail   string                 `json:"detail"`
	Instance *string                `json:"instance,omitempty"`
	Errors   []domerrors.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeData sends { "data": v } with the given status.
func writeData(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, successResponse{Data: v})
}

// writePage sends { "data": v, "meta": { "pagination": m } }.
func writePage(w http.ResponseWriter, code int, v any, m pagination.Meta) {
	writeJSON(w, code, successResponse{Data: v, Meta: &meta{Pagination: &m}})
}

// writeProblem sends an RFC 7807 document with type urn:error:<code>.
func writeProblem(w http.ResponseWriter, status int, code, title, detail string, fields []domerrors.FieldError) {
	writeJSON(w, status, problem{
		Type:   "urn:error:" + code,
		Title:  title,
		Status: status,
		Detail: detail,
		Errors: fields,
	})
}

// writeError maps the error taxonomy to HTTP problems. Store failures are
// logged here and replaced with a generic detail so raw database error text
// never reaches the client.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var domainErr *domerrors.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domerrors.CodeBusinessRuleViolation:
			writeProblem(w, http.StatusUnprocessableEntity, domainErr.Code, "Business Rule Violation", domainErr.Message, nil)
		case domerrors.CodeEntityNotFound:
			writeProblem(w, http.StatusNotFound, domainErr.Code, "Entity Not Found", domainErr.Message, nil)
		case domerrors.CodeDuplicateEntity:
			writeProblem(w, http.StatusConflict, domainErr.Code, "Duplicate Entity", domainErr.Message, nil)
		default:
			writeProblem(w, http.StatusBadRequest, domerrors.CodeInvalidValue, "Invalid Value", domainErr.Message, nil)
		}
		return
	}

	var validationErr *domerrors.ValidationError
	if errors.As(err, &validationErr) {
		writeProblem(w, http.StatusBadRequest, domerrors.CodeValidationError, "Validation Error", validationErr.Message, validationErr.Fields)
		return
	}

	var notFoundErr *domerrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		writeProblem(w, http.StatusNotFound, domerrors.CodeNotFound, "Not Found", notFoundErr.Message, nil)
		return
	}

	var dbErr *domerrors.DatabaseError
	if errors.As(err, &dbErr) {
		log.Error().Err(dbErr.Err).Msg("database error")
		writeProblem(w, http.StatusInternalServerError, domerrors.CodeDatabaseError, "Database Error",
			"A database error occurred. Please try again later.", nil)
		return
	}

	var unauthorizedErr *domerrors.UnauthorizedError
	if errors.As(err, &unauthorizedErr) {
		writeProblem(w, http.StatusUnauthorized, domerrors.CodeUnauthorized, "Unauthorized",
			"Authentication is required to access this resource.", nil)
		return
	}

	var forbiddenErr *domerrors.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		writeProblem(w, http.StatusForbidden, domerrors.CodeForbidden, "Forbidden", forbiddenErr.Message, nil)
		return
	}

	log.Error().Err(err).Msg("internal error")
	writeProblem(w, http.StatusInternalServerError, domerrors.CodeInternalError, "Internal Server Error",
		"An unexpected error occurred. Please try again later.", nil)
}
