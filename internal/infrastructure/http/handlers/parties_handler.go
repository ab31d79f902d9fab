package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	appparty "github.com/vanphubinh/erp-api/internal/application/party"
	"github.com/vanphubinh/erp-api/internal/domain"
	domerrors "github.com/vanphubinh/erp-api/internal/domain/errors"
)

// PartiesHandler handles /api/parties/*.
type PartiesHandler struct {
	create      *appparty.CreateParty
	get         *appparty.GetParty
	list        *appparty.ListParties
	update      *appparty.UpdateParty
	remove      *appparty.DeleteParty
	activate    *appparty.ActivateParty
	deactivate  *appparty.DeactivateParty
	validate    *validator.Validate
	maxPageSize int
	log         zerolog.Logger
}

// PartyUseCases groups the wired use cases for the handler.
type PartyUseCases struct {
	Create     *appparty.CreateParty
	Get        *appparty.GetParty
	List       *appparty.ListParties
	Update     *appparty.UpdateParty
	Delete     *appparty.DeleteParty
	Activate   *appparty.ActivateParty
	Deactivate *appparty.DeactivateParty
}

// NewPartiesHandler creates the handler.
func NewPartiesHandler(uc PartyUseCases, maxPageSize int, log zerolog.Logger) *PartiesHandler {
	return &PartiesHandler{
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

// createPartyRequest is the JSON body for create. partyType and displayName
// are required; the rest are optional (empty means "not provided").
type createPartyRequest struct {
	PartyType          string `json:"partyType" validate:"required"`
	DisplayName        string `json:"displayName" validate:"required,max=255"`
	LegalName          string `json:"legalName"`
	Tin                string `json:"tin"`
	RegistrationNumber string `json:"registrationNumber"`
}

// updatePartyRequest is the JSON body for update. The party type is immutable
// and not accepted here.
type updatePartyRequest struct {
	DisplayName        string `json:"displayName" validate:"required,max=255"`
	LegalName          string `json:"legalName"`
	Tin                string `json:"tin"`
	RegistrationNumber string `json:"registrationNumber"`
}

// partyResponse is the JSON shape for one party.
type partyResponse struct {
	ID                 string    `json:"id"`
	PartyType          string    `json:"partyType"`
	DisplayName        string    `json:"displayName"`
	LegalName          *string   `json:"legalName"`
	Tin                *string   `json:"tin"`
	RegistrationNumber *string   `json:"registrationNumber"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toPartyResponse(party *domain.Party) partyResponse {
	var legalName, tin, registrationNumber *string
	if n := party.LegalName(); n != nil {
		v := n.Value()
		legalName = &v
	}
	if t := party.Tin(); t != nil {
		v := t.Value()
		tin = &v
	}
	if n := party.RegistrationNumber(); n != nil {
		v := n.Value()
		registrationNumber = &v
	}
	return partyResponse{
		ID:                 party.ID().String(),
		PartyType:          party.Type().String(),
		DisplayName:        party.DisplayName().Value(),
		LegalName:          legalName,
		Tin:                tin,
		RegistrationNumber: registrationNumber,
		IsActive:           party.IsActive(),
		CreatedAt:          party.CreatedAt(),
		UpdatedAt:          party.UpdatedAt(),
	}
}

// Create handles POST /api/parties/create.
func (h *PartiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, domerrors.NewValidation("invalid request body"))
		return
	}
	if err := checkStruct(h.validate, req); err != nil {
		writeError(w, h.log, err)
		return
	}
	party, err := h.create.Execute(r.Context(), appparty.CreatePartyInput{
		PartyType:          req.PartyType,
		DisplayName:        req.DisplayName,
		LegalName:          req.LegalName,
		Tin:                req.Tin,
		RegistrationNumber: req.RegistrationNumber,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, idResponse{ID: party.ID().String()})
}

// Get handles GET /api/parties/get/{id}.
func (h *PartiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	party, err := h.get.Execute(r.Context(), domain.NewPartyID(id))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toPartyResponse(party))
}

// List handles GET /api/parties/list?page=&pageSize=.
func (h *PartiesHandler) List(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r, h.maxPageSize)
	parties, pageMeta, err := h.list.Execute(r.Context(), params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	items := make([]partyResponse, 0, len(parties))
	for _, party := range parties {
		items = append(items, toPartyResponse(party))
	}
	writePage(w, http.StatusOK, items, pageMeta)
}

// Update handles PUT /api/parties/update/{id}.
func (h *PartiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	var req updatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, domerrors.NewValidation("invalid request body"))
		return
	}
	if err := checkStruct(h.validate, req); err != nil {
		writeError(w, h.log, err)
		return
	}
	party, err := h.update.Execute(r.Context(), domain.NewPartyID(id), appparty.UpdatePartyInput{
		DisplayName:        req.DisplayName,
		LegalName:          req.LegalName,
		Tin:                req.Tin,
		RegistrationNumber: req.RegistrationNumber,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toPartyResponse(party))
}

// Delete handles DELETE /api/parties/delete/{id}.
func (h *PartiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.remove.Execute(r.Context(), domain.NewPartyID(id)); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activate handles PUT /api/parties/activate/{id}.
func (h *PartiesHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	party, err := h.activate.Execute(r.Context(), domain.NewPartyID(id))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toPartyResponse(party))
}

// Deactivate handles PUT /api/parties/deactivate/{id}.
func (h *PartiesHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	party, err := h.deactivate.Execute(r.Context(), domain.NewPartyID(id))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toPartyResponse(party))
}
