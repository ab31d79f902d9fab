package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
	"github.com/vanphubinh/erp-api/internal/pagination"
)

// idParam parses the {id} route parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, domerrors.NewValidation("invalid id").WithField("id", "must be a valid UUID")
	}
	return id, nil
}

// pageParams reads page and pageSize from the query string and sanitizes them.
// Missing or non-numeric values fall back to the defaults before clamping.
func pageParams(r *http.Request, maxPageSize int) pagination.PageParams {
	params := pagination.DefaultPageParams()
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.Page = v
		}
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			params.PageSize = v
		}
	}
	return params.Validate(maxPageSize)
}

// checkStruct runs validator tags over a request DTO and converts failures to
// the field-level validation error shape.
func checkStruct(validate *validator.Validate, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &domerrors.InternalError{Message: err.Error()}
	}
	out := domerrors.NewValidation("request validation failed")
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		out.WithField(field, fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return out
}
