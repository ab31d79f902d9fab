package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	apporg "github.com/vanphubinh/erp-api/internal/application/organization"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// OrganizationsHandler handles /api/organizations/*.
type OrganizationsHandler struct {
	create      *apporg.CreateOrganization
	get         *apporg.GetOrganization
	list        *apporg.ListOrganizations
	update      *apporg.UpdateOrganization
	remove      *apporg.DeleteOrganization
	activate    *apporg.ActivateOrganization
	deactivate  *apporg.DeactivateOrganization
	validate    *validator.Validate
	maxPageSize int
	log         zerolog.Logger
}

// OrganizationUseCases groups the wired use cases for the handler.
type OrganizationUseCases struct {
	Create     *apporg.CreateOrganization
	Get        *apporg.GetOrganization
	List       *apporg.ListOrganizations
	Update     *apporg.UpdateOrganization
	Delete     *apporg.DeleteOrganization
	Activate   *apporg.ActivateOrganization
	Deactivate *apporg.DeactivateOrganization
}

// NewOrganizationsHandler creates the handler.
func NewOrganizationsHandler(uc OrganizationUseCases, maxPageSize int, log zerolog.Logger) *OrganizationsHandler {
	return &OrganizationsHandler{
		create:      uc.Create,
		get:         uc.Get,
		list:        uc.List,
		update:      uc.Update,
		remove:      uc.Delete,
		activate:    uc.Activate,
		deactivate:  uc.Deactivate,
		validate:    validator.New(),
		maxPageSize: maxPageSize,
		log:         log,
	}
}

// organizationRequest is the JSON body for create and update. Everything but
// name is optional; empty strings mean "not provided".
type organizationRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
}

// idResponse is the JSON shape returned by create.
type idResponse struct {
	ID string `json:"id"`
}

// organizationResponse is the JSON shape for one organization.
type organizationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	Industry    *string   `json:"industry"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	PostalCode  *string   `json:"postalCode"`
	CountryCode *string   `json:"countryCode"`
	Timezone    *string   `json:"timezone"`
	Currency    *string   `json:"currency"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toOrganizationResponse(org *domain.Organization) organizationResponse {
	var email, phone, website *string
	if e := org.Email(); e != nil {
		v := e.Value()
		email = &v
	}
	if p := org.Phone(); p != nil {
		v := p.Value()
		phone = &v
	}
	if w := org.Website(); w != nil {
		v := w.Value()
		website = &v
	}
	d := org.Details()
	return organizationResponse{
		ID:          org.ID().String(),
		Name:        org.Name().Value(),
		Email:       email,
		Phone:       phone,
		Website:     website,
		Industry:    d.Industry,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		PostalCode:  d.PostalCode,
		CountryCode: d.CountryCode,
		Timezone:    d.Timezone,
		Currency:    d.Currency,
		IsActive:    org.IsActive(),
		CreatedAt:   org.CreatedAt(),
		UpdatedAt:   org.UpdatedAt(),
	}
}

func (req organizationRequest) toCreateInput() apporg.CreateOrganizationInput {
	return apporg.CreateOrganizationInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Industry:    req.Industry,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		CountryCode: req.CountryCode,
		Timezone:    req.Timezone,
		Currency:    req.Currency,
	}
}

// Create handles POST /api/organizations/create.
func (h *OrganizationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req organizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, domerrors.NewValidation("invalid request body"))
		return
	}
	if err := checkStruct(h.validate, req); err != nil {
		writeError(w, h.log, err)
		return
	}
	org, err := h.create.Execute(r.Context(), req.toCreateInput())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, idResponse{ID: org.ID().String()})
}

// Get handles GET /api/organizations/get/{id}.
func (h *OrganizationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	org, err := h.get.Execute(r.Context(), domain.NewOrganizationID(id))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toOrganizationResponse(org))
}

// List handles GET /api/organizations/list?page=&pageSize=.
func (h *OrganizationsHandler) List(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r, h.maxPageSize)
	orgs, pageMeta, err := h.list.Execute(r.Context(), params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	items := make([]organizationResponse, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, toOrganizationResponse(org))
	}
	writePage(w, http.StatusOK, items, pageMeta)
}

// Update handles PUT /api/organizations/update/{id}.
func (h *OrganizationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req organizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, domerrors.NewValidation("invalid request body"))
		return
	}
	if err := checkStruct(h.validate, req); err != nil {
		writeError(w, h.log, err)
		return
	}
	org, err := h.update.Execute(r.Context(), domain.NewOrganizationID(id), apporg.UpdateOrganizationInput(req.toCreateInput()))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toOrganizationResponse(org))
}

// Delete handles DELETE /api/organizations/delete/{id}.
func (h *OrganizationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.remove.Execute(r.Context(), domain.NewOrganizationID(id)); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activate handles PUT /api/organizations/activate/{id}.
func (h *OrganizationsHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	org, err := h.activate.Execute(r.Context(), domain.NewOrganizationID(id))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toOrganizationResponse(org))
}

// Deactivate handles PUT /api/organizations/deactivate/{id}.
func (h *OrganizationsHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	org, err := h.deactivate.Execute(r.Context(), domain.NewOrganizationID(id))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toOrganizationResponse(org))
}
