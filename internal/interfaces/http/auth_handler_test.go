package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zapcom/resource-pulse-api/internal/application/auth"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	apphttp "github.com/zapcom/resource-pulse-api/internal/interfaces/http"
)

// fakeUserRepo usuarios en memoria para el handler de login.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

func buildLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(&fakeUserRepo{users: map[string]*entity.User{
		"hr@zapcom.com": {
			ID: 3, Name: "Sofía Blanco", Email: "hr@zapcom.com",
			PasswordHash: string(hash), Role: entity.RoleHR,
		},
	}}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer})

	app := fiber.New()
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc).Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginEndpoint_CredencialesValidas(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{"email":"hr@zapcom.com","password":"correct-password"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.AccessToken)
	assert.Equal(t, int64(3), body.User.ID)
	assert.Equal(t, entity.RoleHR, body.User.Role)
}

func TestLoginEndpoint_PasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{"email":"hr@zapcom.com","password":"mala"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginEndpoint_CamposFaltantes_Retorna400(t *testing.T) {
	app := buildLoginApp(t)
	resp := postLogin(t, app, `{"email":"hr@zapcom.com"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Email and password required", body["message"])
}
