package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The secret must be resolved on first use, not at package load, so a value
// coming from a .env file loaded in main is honored.
const testSecret = "secret-from-config-file"

func TestGenerateTokenUsesConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateToken(7, "buyer@example.com", "user", 1)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.BuyerID)
	assert.Equal(t, "buyer@example.com", claims.Email)

	// the default dev secret must not validate this token
	_, err = jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("dev-secret-please-change"), nil
	})
	assert.Error(t, err)
}

func TestJWTMiddlewareRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateToken(9, "buyer@example.com", "user", 1)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		claims := GetClaims(c)
		require.NotNil(t, claims)
		assert.Equal(t, int64(9), claims.BuyerID)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
