package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tema/apostila do programa. O conteúdo do arquivo mora no disco (em
// /uploads); aqui fica só a referência.
type ThemeModel struct {
	ThemeID            string    `gorm:"column:theme_id;primaryKey;type:uuid"`
	ThemeTitle         string    `gorm:"column:theme_title;type:varchar(200);not null"`
	ThemeSpeaker       *string   `gorm:"column:theme_speaker;type:varchar(120)"`
	ThemeEventDate     *string   `gorm:"column:theme_event_date;type:date"`
	ThemeFileURL       string    `gorm:"column:theme_file_url;type:text;not null"`
	ThemeFileType      string    `gorm:"column:theme_file_type;type:varchar(100);not null"`
	ThemeCoverImageURL *string   `gorm:"column:theme_cover_image_url;type:text"`
	ThemeCreatedAt     time.Time `gorm:"column:theme_created_at;autoCreateTime"`
}

func (ThemeModel) TableName() string {
	return "themes"
}

func (m *ThemeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ThemeID == "" {
		m.ThemeID = uuid.NewString()
	}
	return nil
}
