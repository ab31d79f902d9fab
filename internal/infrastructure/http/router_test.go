package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporg "github.com/vanphubinh/erp-api/internal/application/organization"
	appparty "github.com/vanphubinh/erp-api/internal/application/party"
	httprouter "github.com/vanphubinh/erp-api/internal/infrastructure/http"
	"github.com/vanphubinh/erp-api/internal/infrastructure/http/handlers"
	"github.com/vanphubinh/erp-api/internal/infrastructure/persistence/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := zerolog.New(io.Discard)

	orgRepo := memory.NewOrganizationRepository()
	partyRepo := memory.NewPartyRepository()

	orgsHandler := handlers.NewOrganizationsHandler(handlers.OrganizationUseCases{
		Create:     apporg.NewCreateOrganization(orgRepo),
		Get:        apporg.NewGetOrganization(orgRepo),
		List:       apporg.NewListOrganizations(orgRepo),
		Update:     apporg.NewUpdateOrganization(orgRepo),
		Delete:     apporg.NewDeleteOrganization(orgRepo),
		Activate:   apporg.NewActivateOrganization(orgRepo),
		Deactivate: apporg.NewDeactivateOrganization(orgRepo),
	}, 100, log)

	partiesHandler := handlers.NewPartiesHandler(handlers.PartyUseCases{
		Create:     appparty.NewCreateParty(partyRepo),
		Get:        appparty.NewGetParty(partyRepo),
		List:       appparty.NewListParties(partyRepo),
		Update:     appparty.NewUpdateParty(partyRepo),
		Delete:     appparty.NewDeleteParty(partyRepo),
		Activate:   appparty.NewActivateParty(partyRepo),
		Deactivate: appparty.NewDeactivateParty(partyRepo),
	}, 100, log)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		OrganizationsHandler: orgsHandler,
		PartiesHandler:       partiesHandler,
		Log:                  log,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp, nil
	}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func createOrganization(t *testing.T, srv *httptest.Server, body map[string]any) string {
	t.Helper()
	resp, got := doJSON(t, srv, http.MethodPost, "/api/organizations/create", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := got["data"].(map[string]any)
	return data["id"].(string)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, got := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", got["status"])
}

func TestCreateAndGetOrganization(t *testing.T) {
	srv := newTestServer(t)

	id := createOrganization(t, srv, map[string]any{"name": "Acme Corp"})

	resp, got := doJSON(t, srv, http.MethodGet, "/api/organizations/get/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := got["data"].(map[string]any)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, "Acme Corp", data["name"])
	assert.Nil(t, data["email"])
	assert.Nil(t, data["phone"])
	assert.Nil(t, data["website"])
	assert.Equal(t, true, data["isActive"])
	assert.Equal(t, data["createdAt"], data["updatedAt"])
}

func TestCreateOrganization_EmptyName(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPost, "/api/organizations/create", map[string]any{"name": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "urn:error:validation_error", got["type"])

	// Whitespace passes the required tag but fails domain validation.
	resp, got = doJSON(t, srv, http.MethodPost, "/api/organizations/create", map[string]any{"name": "   "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "urn:error:invalid_value", got["type"])
}

func TestCreateOrganization_InvalidEmail(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPost, "/api/organizations/create",
		map[string]any{"name": "Acme", "email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "urn:error:invalid_value", got["type"])
	assert.Equal(t, "invalid email", got["detail"])
}

func TestGetOrganization_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodGet,
		"/api/organizations/get/0191d7a0-0000-7000-8000-000000000000", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "urn:error:not_found", got["type"])
}

func TestGetOrganization_MalformedID(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodGet, "/api/organizations/get/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "urn:error:validation_error", got["type"])
}

func TestListOrganizations_Pagination(t *testing.T) {
	srv := newTestServer(t)
	for i := 0; i < 15; i++ {
		createOrganization(t, srv, map[string]any{"name": fmt.Sprintf("Org %02d", i)})
	}

	resp, got := doJSON(t, srv, http.MethodGet, "/api/organizations/list?page=1&pageSize=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, got["data"].([]any), 10)

	pg := got["meta"].(map[string]any)["pagination"].(map[string]any)
	assert.EqualValues(t, 15, pg["total"])
	assert.EqualValues(t, 2, pg["totalPages"])
	assert.Equal(t, true, pg["hasNext"])
	assert.Equal(t, false, pg["hasPrev"])

	resp, got = doJSON(t, srv, http.MethodGet, "/api/organizations/list?page=2&pageSize=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, got["data"].([]any), 5)
	pg = got["meta"].(map[string]any)["pagination"].(map[string]any)
	assert.Equal(t, false, pg["hasNext"])
	assert.Equal(t, true, pg["hasPrev"])
}

func TestListOrganizations_ClampsParams(t *testing.T) {
	srv := newTestServer(t)
	createOrganization(t, srv, map[string]any{"name": "Acme"})

	resp, got := doJSON(t, srv, http.MethodGet, "/api/organizations/list?page=-1&pageSize=5000", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pg := got["meta"].(map[string]any)["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pg["page"])
	assert.EqualValues(t, 100, pg["pageSize"])
}

func TestUpdateOrganization_Replaces(t *testing.T) {
	srv := newTestServer(t)
	id := createOrganization(t, srv, map[string]any{"name": "Acme", "email": "info@acme.com"})

	resp, got := doJSON(t, srv, http.MethodPut, "/api/organizations/update/"+id,
		map[string]any{"name": "Acme Holdings", "phone": "+1 555 0100"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := got["data"].(map[string]any)
	assert.Equal(t, "Acme Holdings", data["name"])
	assert.Nil(t, data["email"])
	assert.Equal(t, "+1 555 0100", data["phone"])
}

func TestUpdateOrganization_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPut,
		"/api/organizations/update/0191d7a0-0000-7000-8000-000000000000",
		map[string]any{"name": "Ghost"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "urn:error:not_found", got["type"])
}

func TestDeleteOrganization(t *testing.T) {
	srv := newTestServer(t)
	id := createOrganization(t, srv, map[string]any{"name": "Acme"})

	resp, _ := doJSON(t, srv, http.MethodDelete, "/api/organizations/delete/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, srv, http.MethodGet, "/api/organizations/get/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Deleting again still succeeds.
	resp, _ = doJSON(t, srv, http.MethodDelete, "/api/organizations/delete/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestOrganizationActivation(t *testing.T) {
	srv := newTestServer(t)
	id := createOrganization(t, srv, map[string]any{"name": "Acme"})

	resp, got := doJSON(t, srv, http.MethodPut, "/api/organizations/deactivate/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, got["data"].(map[string]any)["isActive"])

	resp, got = doJSON(t, srv, http.MethodPut, "/api/organizations/activate/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, got["data"].(map[string]any)["isActive"])
}

func TestCreateAndGetParty(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPost, "/api/parties/create", map[string]any{
		"partyType":   "company",
		"displayName": "Acme Ltd",
		"legalName":   "Acme Limited Co.",
		"tin":         "12-3456789",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := got["data"].(map[string]any)["id"].(string)

	resp, got = doJSON(t, srv, http.MethodGet, "/api/parties/get/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := got["data"].(map[string]any)
	assert.Equal(t, "company", data["partyType"])
	assert.Equal(t, "Acme Ltd", data["displayName"])
	assert.Equal(t, "Acme Limited Co.", data["legalName"])
	assert.Equal(t, "12-3456789", data["tin"])
	assert.Nil(t, data["registrationNumber"])
	assert.Equal(t, true, data["isActive"])
}

func TestCreateParty_InvalidType(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPost, "/api/parties/create",
		map[string]any{"partyType": "robot", "displayName": "R2D2"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "urn:error:invalid_value", got["type"])
	assert.Contains(t, got["detail"].(string), "invalid party type")
}

func TestCreateParty_MissingRequiredFields(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPost, "/api/parties/create", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "urn:error:validation_error", got["type"])
	assert.Len(t, got["errors"].([]any), 2)
}

func TestUpdateParty_TypeImmutable(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPost, "/api/parties/create",
		map[string]any{"partyType": "person", "displayName": "Jane Doe"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := got["data"].(map[string]any)["id"].(string)

	resp, got = doJSON(t, srv, http.MethodPut, "/api/parties/update/"+id,
		map[string]any{"displayName": "Jane Smith", "partyType": "company"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := got["data"].(map[string]any)
	assert.Equal(t, "Jane Smith", data["displayName"])
	// The unknown field is ignored; the stored type stays.
	assert.Equal(t, "person", data["partyType"])
}

func TestPartyActivation(t *testing.T) {
	srv := newTestServer(t)

	resp, got := doJSON(t, srv, http.MethodPost, "/api/parties/create",
		map[string]any{"partyType": "person", "displayName": "Jane Doe"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := got["data"].(map[string]any)["id"].(string)

	resp, got = doJSON(t, srv, http.MethodPut, "/api/parties/deactivate/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, got["data"].(map[string]any)["isActive"])

	resp, got = doJSON(t, srv, http.MethodPut, "/api/parties/activate/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, got["data"].(map[string]any)["isActive"])
}

func TestUnsupportedContentType(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/organizations/create",
		bytes.NewReader([]byte("name=Acme")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}
