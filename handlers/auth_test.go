// auth_test.go - Tests for registration, login and the current-user endpoint

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupEnv(t)

	// --- Registration ---
	reg := RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "testpass",
	}
	w := doJSON(env, "POST", "/api/auth/register", reg, "", false)
	require.Equal(t, http.StatusCreated, w.Code)

	var regBody struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			IsAdmin bool   `json:"isAdmin"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regBody))
	assert.NotEmpty(t, regBody.Token)
	assert.Equal(t, "test@example.com", regBody.User.Email)
	assert.False(t, regBody.User.IsAdmin)
	assert.NotContains(t, w.Body.String(), "password")

	// --- Login ---
	login := LoginInput{Email: "test@example.com", Password: "testpass"}
	w = doJSON(env, "POST", "/api/auth/login", login, "", false)
	require.Equal(t, http.StatusOK, w.Code)

	var loginBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginBody))
	assert.NotEmpty(t, loginBody.Token)

	// --- Login with wrong password ---
	login.Password = "wrongpass"
	w = doJSON(env, "POST", "/api/auth/login", login, "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// --- Login with unknown email: same answer, no user enumeration ---
	w = doJSON(env, "POST", "/api/auth/login", LoginInput{Email: "nobody@example.com", Password: "x"}, "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	env := setupEnv(t)

	reg := RegisterInput{Name: "Test User", Email: "dup@example.com", Password: "testpass"}
	w := doJSON(env, "POST", "/api/auth/register", reg, "", false)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(env, "POST", "/api/auth/register", reg, "", false)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterValidatesInput(t *testing.T) {
	env := setupEnv(t)

	// Bad email format.
	w := doJSON(env, "POST", "/api/auth/register", RegisterInput{Name: "X", Email: "not-an-email", Password: "testpass"}, "", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short.
	w = doJSON(env, "POST", "/api/auth/register", RegisterInput{Name: "X", Email: "ok@example.com", Password: "abc"}, "", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	env := setupEnv(t)
	user, token := env.createUser(t, "me@example.com", false)

	w := doJSON(env, "GET", "/api/auth/me", nil, token, false)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.ID.String(), body.User.ID)
	assert.Equal(t, "me@example.com", body.User.Email)

	// No token, no /me.
	w = doJSON(env, "GET", "/api/auth/me", nil, "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
