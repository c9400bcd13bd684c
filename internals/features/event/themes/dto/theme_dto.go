package dto

import (
	"time"

	"profoli_backend/internals/features/event/themes/model"
)

type ThemeDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Speaker       *string   `json:"speaker"`
	EventDate     *string   `json:"event_date"`
	FileURL       string    `json:"file_url"`
	FileType      string    `json:"file_type"`
	CoverImageURL *string   `json:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToThemeDTO(m model.ThemeModel) ThemeDTO {
	return ThemeDTO{
		ID:            m.ThemeID,
		Title:         m.ThemeTitle,
		Speaker:       m.ThemeSpeaker,
		EventDate:     m.ThemeEventDate,
		FileURL:       m.ThemeFileURL,
		FileType:      m.ThemeFileType,
		CoverImageURL: m.ThemeCoverImageURL,
		CreatedAt:     m.ThemeCreatedAt,
	}
}
