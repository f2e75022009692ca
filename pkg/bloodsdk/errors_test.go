package bloodsdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("success status yields nil", func(t *testing.T) {
		require.NoError(t, parseErrorResponse(http.StatusOK, []byte("ok")))
		require.NoError(t, parseErrorResponse(http.StatusCreated, nil))
	})

	t.Run("plain text body", func(t *testing.T) {
		err := parseErrorResponse(http.StatusBadRequest, []byte("Username already exists.\n"))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Username already exists.", apiErr.Message)
	})

	t.Run("json message body", func(t *testing.T) {
		err := parseErrorResponse(http.StatusForbidden, []byte(`{"message":"access denied"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "access denied", apiErr.Message)
	})

	t.Run("empty body falls back to status text", func(t *testing.T) {
		err := parseErrorResponse(http.StatusInternalServerError, nil)
		require.Contains(t, err.Error(), "HTTP 500")
	})
}

func TestUnauthorizedUnwrap(t *testing.T) {
	t.Parallel()

	err := parseErrorResponse(http.StatusUnauthorized, []byte("token expired"))
	require.ErrorIs(t, err, ErrUnauthorized)

	err = parseErrorResponse(http.StatusForbidden, []byte("nope"))
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestIsStatus(t *testing.T) {
	t.Parallel()

	err := parseErrorResponse(http.StatusUnauthorized, []byte("nope"))
	require.True(t, IsStatus(err, http.StatusUnauthorized))
	require.False(t, IsStatus(err, http.StatusForbidden))
	require.False(t, IsStatus(nil, http.StatusUnauthorized))
}
