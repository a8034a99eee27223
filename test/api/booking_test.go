package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryEndpoints(t *testing.T) {
	requireServer(t)

	for _, path := range []string{"/departments", "/doctors", "/services", "/ambulances", "/bloodbank"} {
		t.Run(path, func(t *testing.T) {
			status, body := doRequest("GET", path, nil, "")
			require.Equal(t, http.StatusOK, status)

			var list []map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &list), "expected a JSON array from %s", path)
		})
	}
}

func TestBookingFlow(t *testing.T) {
	requireServer(t)

	// Book from the full-page form shape.
	status, body := doRequest("POST", "/appointments", map[string]interface{}{
		"patientName":     "Live Test Patient",
		"patientEmail":    uniqueEmail("patient"),
		"patientPhone":    "+1234567890",
		"department":      "Cardiology",
		"appointmentDate": "2026-09-15",
		"appointmentTime": "10:30",
	}, "")
	require.Equal(t, http.StatusCreated, status, "booking failed: %s", body)

	var created struct {
		Success bool    `json:"success"`
		ID      float64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.True(t, created.Success)
	require.NotZero(t, created.ID)

	// The new booking shows up in the list, newest first.
	status, body = doRequest("GET", "/appointments", nil, "")
	require.Equal(t, http.StatusOK, status)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &list))
	require.NotEmpty(t, list)
	assert.Equal(t, created.ID, list[0]["id"])
	assert.Equal(t, "confirmed", list[0]["status"])
}

func TestBookingValidation(t *testing.T) {
	requireServer(t)

	status, body := doRequest("POST", "/appointments", map[string]interface{}{
		"patientName":     "Missing Time",
		"patientEmail":    uniqueEmail("patient"),
		"patientPhone":    "+1234567890",
		"department":      "Cardiology",
		"appointmentDate": "2026-09-15",
	}, "")
	require.Equal(t, http.StatusBadRequest, status)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "appointmentTime is required", resp["error"])
}

func TestStatusUpdateRequiresAuth(t *testing.T) {
	requireServer(t)

	status, _ := doRequest("PUT", "/appointments/1", map[string]string{"status": "cancelled"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminStatusFlow(t *testing.T) {
	requireAdmin(t)

	status, body := doRequest("POST", "/appointments", map[string]interface{}{
		"patientName":     "Admin Flow Patient",
		"patientEmail":    uniqueEmail("patient"),
		"patientPhone":    "+1234567890",
		"departmentId":    1,
		"appointmentDate": "2026-09-16",
		"appointmentTime": "11:00",
	}, "")
	require.Equal(t, http.StatusCreated, status, "booking failed: %s", body)

	var created struct {
		ID float64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	path := fmt.Sprintf("/appointments/%d", int64(created.ID))
	status, _ = doRequest("PUT", path, map[string]string{"status": "cancelled"}, adminToken)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest("GET", path, nil, "")
	require.Equal(t, http.StatusOK, status)
	var apt map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &apt))
	assert.Equal(t, "cancelled", apt["status"])

	status, _ = doRequest("PUT", path, map[string]string{"status": "approved"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestContactFlow(t *testing.T) {
	requireServer(t)

	status, body := doRequest("POST", "/contacts", map[string]interface{}{
		"name":    "Live Contact",
		"email":   uniqueEmail("contact"),
		"message": "What are your visiting hours?",
	}, "")
	require.Equal(t, http.StatusCreated, status, "contact failed: %s", body)

	status, _ = doRequest("GET", "/contact/messages", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthFlow(t *testing.T) {
	requireServer(t)

	email := uniqueEmail("register")
	status, body := doRequest("POST", "/auth/register", map[string]interface{}{
		"name":     "Live Register",
		"email":    email,
		"password": "s3cret-password",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register failed: %s", body)

	status, body = doRequest("POST", "/auth/login", map[string]interface{}{
		"email":    email,
		"password": "s3cret-password",
	}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %s", body)

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)

	status, _ = doRequest("POST", "/auth/login", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}
