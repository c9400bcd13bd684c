// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler padroniza toda resposta de erro como {"error": mensagem}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// JsonID responde {"id": ...} (corpo de sucesso dos POSTs de criação).
func JsonID(c *fiber.Ctx, id string) error {
	return c.JSON(fiber.Map{"id": id})
}

// JsonSuccess responde {"success": true}.
func JsonSuccess(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

// ValidationError converte erros do validator.v10 em uma mensagem legível.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("Campo inválido: %s (%s)", fe.Field(), fe.Tag()))
	}
	return JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
}
