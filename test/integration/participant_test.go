package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/eventojovem/api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participantBody(cpf string) map[string]any {
	return map[string]any{
		"full_name":  "Ana Lima",
		"birth_date": "2008-01-20",
		"cpf":        cpf,
		"district":   "Leste",
		"church":     "Congregação Leste",
	}
}

func createParticipant(t *testing.T, app *testApp, token, cpf string) map[string]any {
	t.Helper()

	resp := postJSON(t, app.Client, app.Server.URL+"/api/participants", token, participantBody(cpf))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	return created
}

func TestCreateParticipant_DuplicateCPF(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	userID, token := createUserAndToken(t, app.DB, domain.RoleDistrictDirector)

	created := createParticipant(t, app, token, "52998224725")
	assert.Equal(t, userID.String(), created["created_by_user_id"])

	birthDate := time.Date(2008, time.January, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, float64(domain.AgeAt(birthDate, time.Now())), created["age"])

	resp := postJSON(t, app.Client, app.Server.URL+"/api/participants", token, participantBody("52998224725"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	var count int
	require.NoError(t, app.DB.QueryRow(`SELECT COUNT(*) FROM participants WHERE cpf = '52998224725'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestListParticipants_RoleScoping(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	directorID, directorToken := createUserAndToken(t, app.DB, domain.RoleDistrictDirector)
	_, otherToken := createUserAndToken(t, app.DB, domain.RoleDistrictDirector)
	_, adminToken := createUserAndToken(t, app.DB, domain.RoleAdministrator)
	_, memberToken := createUserAndToken(t, app.DB, "member")

	createParticipant(t, app, directorToken, "52998224725")
	createParticipant(t, app, directorToken, "11144477735")
	createParticipant(t, app, otherToken, "16899535009")

	resp := doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/participants", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []map[string]any
	decodeBody(t, resp, &all)
	assert.Len(t, all, 3)

	resp = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/participants", directorToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var own []map[string]any
	decodeBody(t, resp, &own)
	require.Len(t, own, 2)
	for _, p := range own {
		assert.Equal(t, directorID.String(), p["created_by_user_id"])
	}

	resp = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/participants", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestGetParticipant(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := createUserAndToken(t, app.DB, domain.RoleDistrictDirector)
	created := createParticipant(t, app, token, "52998224725")

	resp := doJSON(t, app.Client, http.MethodGet, fmt.Sprintf("%s/api/participants/%s", app.Server.URL, created["id"]), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	decodeBody(t, resp, &got)
	assert.Equal(t, created["id"], got["id"])

	resp = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/participants/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestConfirmPayment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, directorToken := createUserAndToken(t, app.DB, domain.RoleDistrictDirector)
	adminID, adminToken := createUserAndToken(t, app.DB, domain.RoleAdministrator)

	created := createParticipant(t, app, directorToken, "52998224725")
	url := fmt.Sprintf("%s/api/participants/payment/%s", app.Server.URL, created["id"])

	resp := doJSON(t, app.Client, http.MethodPut, url, adminToken, map[string]any{"confirm": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var confirmed map[string]any
	decodeBody(t, resp, &confirmed)
	assert.Equal(t, true, confirmed["payment_confirmed"])
	assert.NotEmpty(t, confirmed["payment_confirmation_date"])
	assert.Equal(t, adminID.String(), confirmed["confirmed_by_user_id"])

	resp = doJSON(t, app.Client, http.MethodPut, url, adminToken, map[string]any{"confirm": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cancelled map[string]any
	decodeBody(t, resp, &cancelled)
	assert.Equal(t, false, cancelled["payment_confirmed"])
	assert.NotContains(t, cancelled, "payment_confirmation_date")
	assert.NotContains(t, cancelled, "confirmed_by_user_id")

	// Malformed id is rejected before any lookup.
	resp = doJSON(t, app.Client, http.MethodPut, app.Server.URL+"/api/participants/payment/123", adminToken, map[string]any{"confirm": true})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteParticipant(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, directorToken := createUserAndToken(t, app.DB, domain.RoleDistrictDirector)
	_, adminToken := createUserAndToken(t, app.DB, domain.RoleAdministrator)

	created := createParticipant(t, app, directorToken, "52998224725")
	url := fmt.Sprintf("%s/api/participants/%s", app.Server.URL, created["id"])

	resp := doJSON(t, app.Client, http.MethodDelete, url, directorToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	var count int
	require.NoError(t, app.DB.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&count))
	assert.Equal(t, 1, count, "record must survive a forbidden delete")

	resp = doJSON(t, app.Client, http.MethodDelete, url, adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, app.DB.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestUpdateParticipant(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := createUserAndToken(t, app.DB, domain.RoleDistrictDirector)
	created := createParticipant(t, app, token, "52998224725")
	createParticipant(t, app, token, "11144477735")

	body := participantBody("52998224725")
	body["full_name"] = "Ana Lima Santos"
	body["birth_date"] = "2010-12-01"

	resp := doJSON(t, app.Client, http.MethodPut, fmt.Sprintf("%s/api/participants/%s", app.Server.URL, created["id"]), token, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Ana Lima Santos", updated["full_name"])
	newBirthDate := time.Date(2010, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, float64(domain.AgeAt(newBirthDate, time.Now())), updated["age"])

	// Switching to another participant's CPF conflicts.
	body["cpf"] = "11144477735"
	resp = doJSON(t, app.Client, http.MethodPut, fmt.Sprintf("%s/api/participants/%s", app.Server.URL, created["id"]), token, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}
