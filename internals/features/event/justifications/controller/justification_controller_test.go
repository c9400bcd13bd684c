package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendeeModel "profoli_backend/internals/features/event/attendees/model"
	"profoli_backend/internals/features/event/justifications/dto"
	themeModel "profoli_backend/internals/features/event/themes/model"
	"profoli_backend/internals/testutils"
)

func TestJustificationLifecycle(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	attendee := attendeeModel.AttendeeModel{
		AttendeeName:          "Maria Souza",
		AttendeeCPF:           "12345678900",
		AttendeeStatus:        "active",
		AttendeePaymentStatus: "pending",
	}
	require.NoError(t, db.Create(&attendee).Error)

	theme := themeModel.ThemeModel{
		ThemeTitle:    "Hermenêutica",
		ThemeFileURL:  "/uploads/x.pdf",
		ThemeFileType: "application/pdf",
	}
	require.NoError(t, db.Create(&theme).Error)

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/justifications", dto.CreateJustificationRequest{
		AttendeeID: attendee.AttendeeID,
		ThemeID:    theme.ThemeID,
		Date:       "2026-03-07",
		Reason:     "Plantão no trabalho",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created map[string]string
	testutils.DecodeBody(t, resp, &created)
	require.NotEmpty(t, created["id"])

	resp = testutils.DoJSON(t, app, http.MethodGet, "/api/justifications", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []dto.JustificationDTO
	testutils.DecodeBody(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Maria Souza", rows[0].AttendeeName)
	assert.Equal(t, "Hermenêutica", rows[0].ThemeTitle)
	assert.Equal(t, "Plantão no trabalho", rows[0].Reason)

	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/justifications/"+created["id"], nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutils.DoJSON(t, app, http.MethodGet, "/api/justifications", nil, token)
	rows = nil
	testutils.DecodeBody(t, resp, &rows)
	assert.Empty(t, rows)
}

func TestJustificationRequiresFields(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/justifications", dto.CreateJustificationRequest{
		AttendeeID: "a1",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
