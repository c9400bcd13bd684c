package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profoli_backend/internals/features/users/auth/dto"
	"profoli_backend/internals/testutils"
)

func TestLogin(t *testing.T) {
	db := testutils.OpenDB(t)
	admin, _ := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	t.Run("credenciais corretas", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/login", dto.LoginRequest{
			Username: "admin",
			Password: "admin123",
		}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.LoginResponse
		testutils.DecodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, admin.UserID, body.User.ID)
		assert.Equal(t, "admin", body.User.Username)
		assert.Equal(t, "admin", body.User.Role)
	})

	t.Run("senha errada", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/login", dto.LoginRequest{
			Username: "admin",
			Password: "errada",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/login", dto.LoginRequest{
			Username: "ninguem",
			Password: "x",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestUpdateUser(t *testing.T) {
	db := testutils.OpenDB(t)
	admin, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	t.Run("senha atual errada", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPut, "/api/users/"+admin.UserID, dto.UpdateUserRequest{
			CurrentPassword: "errada",
			Password:        "nova123",
		}, token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("sem token", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPut, "/api/users/"+admin.UserID, dto.UpdateUserRequest{
			CurrentPassword: "admin123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("troca de senha", func(t *testing.T) {
		resp := testutils.DoJSON(t, app, http.MethodPut, "/api/users/"+admin.UserID, dto.UpdateUserRequest{
			CurrentPassword: "admin123",
			Password:        "novasenha",
		}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		// login antigo deixa de valer, novo passa
		resp = testutils.DoJSON(t, app, http.MethodPost, "/api/login", dto.LoginRequest{
			Username: "admin", Password: "admin123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp = testutils.DoJSON(t, app, http.MethodPost, "/api/login", dto.LoginRequest{
			Username: "admin", Password: "novasenha",
		}, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
