package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/store"
)

func testApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	db := store.New()
	db.Seed()

	app := fiber.New()
	app.Post("/login", Login(db))
	app.Post("/register", Register(db))
	app.Post("/logout", Logout())
	app.Get("/me", RequireAuth, Me(db))
	app.Get("/users", RequireAuth, RequireRole(model.RoleAdmin), ListUsers(db))
	app.Post("/users", RequireAuth, RequireRole(model.RoleAdmin), CreateUser(db))
	app.Delete("/users/:username", RequireAuth, RequireRole(model.RoleAdmin), DeleteUser(db))
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func authCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	return nil
}

func TestLoginWithUsername(t *testing.T) {
	app, _ := testApp(t)

	resp := postJSON(t, app, "/login", fiber.Map{"username": "reader1", "password": "turnpage"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "/user", body["redirect_to"])

	cookie := authCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
}

func TestLoginWithEmail(t *testing.T) {
	app, _ := testApp(t)

	resp := postJSON(t, app, "/login", fiber.Map{"username": "rowan@readers.example", "password": "turnpage"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "reader1", body["username"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app, _ := testApp(t)

	resp := postJSON(t, app, "/login", fiber.Map{"username": "reader1", "password": "wrong"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, authCookie(resp))
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	app, db := testApp(t)

	u, err := db.GetUserByUsername("reader2")
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, db.UpdateUser(u))

	resp := postJSON(t, app, "/login", fiber.Map{"username": "reader2", "password": "bookworm"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterCreatesMemberOnly(t *testing.T) {
	app, db := testApp(t)

	resp := postJSON(t, app, "/register", fiber.Map{
		"username": "newreader",
		"name":     "New Reader",
		"email":    "new@readers.example",
		"password": "123456",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	u, err := db.GetUserByUsername("newreader")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Role, "self-registration never grants elevated roles")
}

func TestRegisterConflictAndWeakPassword(t *testing.T) {
	app, _ := testApp(t)

	resp := postJSON(t, app, "/register", fiber.Map{
		"username": "reader1",
		"name":     "Clone",
		"email":    "clone@readers.example",
		"password": "123456",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = postJSON(t, app, "/register", fiber.Map{
		"username": "shorty",
		"name":     "Shorty",
		"email":    "shorty@readers.example",
		"password": "12345",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMeRequiresAuth(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app, _ := testApp(t)

	login := postJSON(t, app, "/login", fiber.Map{"username": "admin", "password": "admin123!"})
	require.Equal(t, fiber.StatusOK, login.StatusCode)
	cookie := authCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, "admin", body["role"])
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	app, _ := testApp(t)

	login := postJSON(t, app, "/login", fiber.Map{"username": "reader1", "password": "turnpage"})
	cookie := authCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(fiber.MethodGet, "/users", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminCreateUserRejectsUnassignableRole(t *testing.T) {
	app, _ := testApp(t)

	login := postJSON(t, app, "/login", fiber.Map{"username": "admin", "password": "admin123!"})
	cookie := authCookie(login)
	require.NotNil(t, cookie)

	resp := postJSON(t, app, "/users", fiber.Map{
		"username": "ghost",
		"email":    "ghost@bookhaven.example",
		"password": "123456",
		"role":     "guest",
	}, cookie)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "Role must be one of")
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	app, db := testApp(t)

	login := postJSON(t, app, "/login", fiber.Map{"username": "admin", "password": "admin123!"})
	cookie := authCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(fiber.MethodDelete, "/users/admin", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, err = db.GetUserByUsername("admin")
	assert.NoError(t, err)
}

func TestLogoutExpiresCookie(t *testing.T) {
	app, _ := testApp(t)

	resp := postJSON(t, app, "/logout", fiber.Map{})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := authCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, strings.TrimSpace(cookie.Value))
	assert.Negative(t, cookie.MaxAge)
}
