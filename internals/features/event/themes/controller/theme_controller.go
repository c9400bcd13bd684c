package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/event/themes/dto"
	"profoli_backend/internals/features/event/themes/model"
	helper "profoli_backend/internals/helpers"
	"profoli_backend/internals/helpers/storage"
)

type ThemeController struct {
	DB *gorm.DB
}

func NewThemeController(db *gorm.DB) *ThemeController {
	return &ThemeController{DB: db}
}

// =============================
// GET /api/themes
// =============================
func (ctrl *ThemeController) GetAllThemes(c *fiber.Ctx) error {
	var themes []model.ThemeModel
	if err := ctrl.DB.Order("theme_created_at DESC").Find(&themes).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := make([]dto.ThemeDTO, 0, len(themes))
	for _, t := range themes {
		response = append(response, dto.ToThemeDTO(t))
	}
	return c.JSON(response)
}

// =============================
// POST /api/themes (multipart: file obrigatório, cover opcional)
// =============================
func (ctrl *ThemeController) CreateTheme(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Título obrigatório.")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Arquivo principal obrigatório.")
	}

	fileURL, fileType, err := storage.SaveUpload(fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	theme := model.ThemeModel{
		ThemeTitle:     title,
		ThemeSpeaker:   optionalFormValue(c, "speaker"),
		ThemeEventDate: optionalFormValue(c, "event_date"),
		ThemeFileURL:   fileURL,
		ThemeFileType:  fileType,
	}

	if coverHeader, err := c.FormFile("cover"); err == nil && coverHeader != nil {
		coverURL, err := storage.SaveCoverWebP(coverHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		theme.ThemeCoverImageURL = &coverURL
	}

	if err := ctrl.DB.Create(&theme).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonID(c, theme.ThemeID)
}

// =============================
// PUT /api/themes/:id (multipart; arquivo e capa opcionais)
// =============================
func (ctrl *ThemeController) UpdateTheme(c *fiber.Ctx) error {
	id := c.Params("id")

	var theme model.ThemeModel
	if err := ctrl.DB.First(&theme, "theme_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Tema não encontrado")
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		theme.ThemeTitle = title
	}
	theme.ThemeSpeaker = optionalFormValue(c, "speaker")
	theme.ThemeEventDate = optionalFormValue(c, "event_date")

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		fileURL, fileType, err := storage.SaveUpload(fileHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		_ = storage.Remove(theme.ThemeFileURL)
		theme.ThemeFileURL = fileURL
		theme.ThemeFileType = fileType
	} else if fileURL := strings.TrimSpace(c.FormValue("file_url")); fileURL != "" {
		theme.ThemeFileURL = fileURL
	}

	if coverHeader, err := c.FormFile("cover"); err == nil && coverHeader != nil {
		coverURL, err := storage.SaveCoverWebP(coverHeader)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if theme.ThemeCoverImageURL != nil {
			_ = storage.Remove(*theme.ThemeCoverImageURL)
		}
		theme.ThemeCoverImageURL = &coverURL
	}

	if err := ctrl.DB.Save(&theme).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}

// =============================
// DELETE /api/themes/:id
// =============================
func (ctrl *ThemeController) DeleteTheme(c *fiber.Ctx) error {
	id := c.Params("id")

	var theme model.ThemeModel
	if err := ctrl.DB.First(&theme, "theme_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Tema não encontrado")
	}

	_ = storage.Remove(theme.ThemeFileURL)
	if theme.ThemeCoverImageURL != nil {
		_ = storage.Remove(*theme.ThemeCoverImageURL)
	}

	if err := ctrl.DB.Delete(&model.ThemeModel{}, "theme_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}

func optionalFormValue(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}
