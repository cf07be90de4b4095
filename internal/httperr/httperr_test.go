package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond_KindMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrValidation("bad_input", "Bad input"), http.StatusBadRequest},
		{ErrInvalidState("booking_not_selectable", "Booking not selectable"), http.StatusBadRequest},
		{ErrNotFound("booking_not_found", "Booking not found"), http.StatusNotFound},
		{ErrConflict("already_paid", "Booking is already paid"), http.StatusConflict},
		{ErrForbidden("not_booking_owner", "You do not own this booking"), http.StatusForbidden},
		{ErrAuth("invalid_token", "Invalid token"), http.StatusUnauthorized},
	}

	for _, tc := range cases {
		status, body := respond(t, tc.err)

		var be BusinessError
		require.True(t, errors.As(tc.err, &be))

		assert.Equal(t, tc.status, status, "code %s", be.Code)
		assert.Equal(t, be.Code, body.Code)
		assert.Equal(t, be.Message, body.Message)
	}
}

func TestRespond_UnknownErrorIsInternal(t *testing.T) {
	status, body := respond(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body.Code)
	// internal detail never leaks
	assert.NotContains(t, body.Message, "pq:")
}

func TestIsBusinessAndKind(t *testing.T) {
	err := ErrConflict("already_applied", "Already applied to this booking")

	assert.True(t, IsBusiness(err, "already_applied"))
	assert.False(t, IsBusiness(err, "already_paid"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsBusiness(errors.New("boom"), "already_applied"))
}
