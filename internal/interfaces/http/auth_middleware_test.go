package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/umkone/umkone-api/internal/interfaces/http"
	pkgjwt "github.com/umkone/umkone-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "pemilik@umkm.id"
	testName      = "Pemilik Usaha"
	testIssuer    = "umkone-test"
	testExpMin    = 60
)

// buildProtectedApp aplikasi Fiber minimal: AuthMiddleware plus handler yang
// memantulkan identitas dari locals.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"email":   apphttp.GetUserEmail(c),
			})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, testName, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doProtectedRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_TokenValid(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, validToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"], "locals harus berisi identitas dari klaim")
	assert.Equal(t, testEmail, body["email"])
}

func TestAuthMiddleware_TanpaHeader(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatSalah(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretBerbeda(t *testing.T) {
	app := buildProtectedApp()

	tok, err := pkgjwt.Generate("secret-lain", testUserID, testEmail, testName, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtectedRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
