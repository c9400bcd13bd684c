package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/configs"
	"profoli_backend/internals/features/users/auth/dto"
	"profoli_backend/internals/features/users/auth/model"
	"profoli_backend/internals/features/users/auth/service"
	helper "profoli_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// POST /api/login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Username = strings.TrimSpace(body.Username)
	body.Password = strings.TrimSpace(body.Password)
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	log.Printf("[AUTH] tentativa de login: %q", body.Username)

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_username = ?", body.Username).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := service.CheckPasswordHash(user.UserPassword, body.Password); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.GenerateToken(user, configs.JWTSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar token")
	}

	return c.JSON(dto.LoginResponse{
		Token: token,
		User:  dto.ToUserDTO(user),
	})
}

// =============================
// PUT /api/users/:id
// =============================
func (ctrl *AuthController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Senha atual incorreta.")
	}
	if err := service.CheckPasswordHash(user.UserPassword, body.CurrentPassword); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Senha atual incorreta.")
	}

	if u := strings.TrimSpace(body.Username); u != "" {
		user.UserUsername = u
	}
	if p := strings.TrimSpace(body.Password); p != "" {
		hash, err := service.HashPassword(p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar senha")
		}
		user.UserPassword = hash
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}
