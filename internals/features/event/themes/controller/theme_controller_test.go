package controller_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profoli_backend/internals/features/event/themes/dto"
	"profoli_backend/internals/features/event/themes/model"
	"profoli_backend/internals/helpers/storage"
	"profoli_backend/internals/testutils"
)

type uploadFile struct {
	name    string
	content []byte
}

func doMultipart(t *testing.T, app *fiber.App, method, path, token string, fields map[string]string, files map[string]uploadFile) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, f := range files {
		part, err := w.CreateFormFile(field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateThemeWithFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	resp := doMultipart(t, app, http.MethodPost, "/api/themes", token,
		map[string]string{"title": "Soteriologia", "speaker": "Pr. Carlos", "event_date": "2026-04-11"},
		map[string]uploadFile{"file": {name: "apostila.pdf", content: []byte("%PDF-1.4 fake")}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created map[string]string
	testutils.DecodeBody(t, resp, &created)
	require.NotEmpty(t, created["id"])

	var theme model.ThemeModel
	require.NoError(t, db.First(&theme, "theme_id = ?", created["id"]).Error)
	assert.Equal(t, "Soteriologia", theme.ThemeTitle)
	require.NotNil(t, theme.ThemeSpeaker)
	assert.Equal(t, "Pr. Carlos", *theme.ThemeSpeaker)
	assert.True(t, strings.HasPrefix(theme.ThemeFileURL, "/uploads/"))
	assert.Equal(t, "application/pdf", theme.ThemeFileType)

	// o arquivo precisa existir no disco com o nome da URL pública
	onDisk := filepath.Join(storage.UploadDir(), filepath.Base(theme.ThemeFileURL))
	_, err := os.Stat(onDisk)
	assert.NoError(t, err)
}

func TestCreateThemeConvertsCoverToWebP(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	resp := doMultipart(t, app, http.MethodPost, "/api/themes", token,
		map[string]string{"title": "Com Capa"},
		map[string]uploadFile{
			"file":  {name: "apostila.pdf", content: []byte("%PDF-1.4 fake")},
			"cover": {name: "capa.png", content: pngBytes(t, 40, 30)},
		})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created map[string]string
	testutils.DecodeBody(t, resp, &created)

	var theme model.ThemeModel
	require.NoError(t, db.First(&theme, "theme_id = ?", created["id"]).Error)
	require.NotNil(t, theme.ThemeCoverImageURL)
	assert.True(t, strings.HasPrefix(*theme.ThemeCoverImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(*theme.ThemeCoverImageURL, ".webp"), "capa deve sair convertida: %s", *theme.ThemeCoverImageURL)

	onDisk := filepath.Join(storage.UploadDir(), filepath.Base(*theme.ThemeCoverImageURL))
	info, err := os.Stat(onDisk)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCreateThemeRejectsBrokenCover(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	resp := doMultipart(t, app, http.MethodPost, "/api/themes", token,
		map[string]string{"title": "Capa Quebrada"},
		map[string]uploadFile{
			"file":  {name: "apostila.pdf", content: []byte("%PDF-1.4 fake")},
			"cover": {name: "capa.png", content: []byte("isto não é uma imagem")},
		})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// pngBytes gera um PNG sólido w×h para usar como capa nos testes.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 58, B: 138, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCreateThemeRequiresFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	resp := doMultipart(t, app, http.MethodPost, "/api/themes", token,
		map[string]string{"title": "Sem arquivo"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	testutils.DecodeBody(t, resp, &body)
	assert.Equal(t, "Arquivo principal obrigatório.", body["error"])
}

func TestUpdateAndDeleteTheme(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	resp := doMultipart(t, app, http.MethodPost, "/api/themes", token,
		map[string]string{"title": "Original"},
		map[string]uploadFile{"file": {name: "apostila.pdf", content: []byte("%PDF-1.4 v1")}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created map[string]string
	testutils.DecodeBody(t, resp, &created)

	resp = doMultipart(t, app, http.MethodPut, "/api/themes/"+created["id"], token,
		map[string]string{"title": "Renomeado"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var theme model.ThemeModel
	require.NoError(t, db.First(&theme, "theme_id = ?", created["id"]).Error)
	assert.Equal(t, "Renomeado", theme.ThemeTitle)

	fileOnDisk := filepath.Join(storage.UploadDir(), filepath.Base(theme.ThemeFileURL))
	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/themes/"+created["id"], nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, err := os.Stat(fileOnDisk)
	assert.True(t, os.IsNotExist(err))
	err = db.First(&model.ThemeModel{}, "theme_id = ?", created["id"]).Error
	assert.Error(t, err)
}

func TestPublicThemesList(t *testing.T) {
	db := testutils.OpenDB(t)
	app := testutils.NewApp(t, db)

	require.NoError(t, db.Create(&model.ThemeModel{
		ThemeTitle:    "Apostila Pública",
		ThemeFileURL:  "/uploads/a.pdf",
		ThemeFileType: "application/pdf",
	}).Error)

	resp := testutils.DoJSON(t, app, http.MethodGet, "/api/public/themes", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []dto.ThemeDTO
	testutils.DecodeBody(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Apostila Pública", rows[0].Title)
}
