package utils

import (
	"github.com/SundayYogurt/signup_service/internal/validation"
	"github.com/gofiber/fiber/v2"
)

func ResponseMessage(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"message": msg,
	})
}

func ResponseValidationErrors(ctx *fiber.Ctx, errs validation.Errors) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"validationErrors": errs,
	})
}
