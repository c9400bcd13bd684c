// file: internals/testutils/testutils.go
// Infra compartilhada dos testes: banco sqlite em memória com o schema
// migrado e um app Fiber com as rotas reais montadas.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gofiber/fiber/v2"

	"profoli_backend/internals/configs"
	"profoli_backend/internals/constants"
	database "profoli_backend/internals/databases"
	userModel "profoli_backend/internals/features/users/auth/model"
	userService "profoli_backend/internals/features/users/auth/service"
	helper "profoli_backend/internals/helpers"
	routes "profoli_backend/internals/route"
)

const testJWTSecret = "test-secret"

func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	database.Migrate(db)
	return db
}

// NewApp monta o app com o mesmo ErrorHandler e rotas da produção.
func NewApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	configs.JWTSecret = testJWTSecret
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	routes.SetupRoutes(app, db)
	return app
}

// SeedAdmin cria um usuário do painel e devolve o model e um token válido.
func SeedAdmin(t *testing.T, db *gorm.DB) (userModel.UserModel, string) {
	t.Helper()
	hash, err := userService.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := userModel.UserModel{
		UserUsername: "admin",
		UserPassword: hash,
		UserRole:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	configs.JWTSecret = testJWTSecret
	token, err := userService.GenerateToken(admin, configs.JWTSecret)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return admin, token
}

// DoJSON executa uma requisição JSON contra o app e devolve a resposta.
func DoJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// DecodeBody lê o corpo JSON da resposta para dentro de out.
func DecodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}
