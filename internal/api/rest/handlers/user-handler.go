package handlers

import (
	"errors"

	"github.com/SundayYogurt/signup_service/internal/dto"
	"github.com/SundayYogurt/signup_service/internal/helper/utils"
	"github.com/SundayYogurt/signup_service/internal/services"
	"github.com/SundayYogurt/signup_service/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc       services.UserService
	validator *validation.Validator
}

func NewUserHandler(svc services.UserService, validator *validation.Validator) *UserHandler {
	return &UserHandler{svc: svc, validator: validator}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	app.Post("/users", h.Register)
	app.Post("/users/token/:token", h.Activate)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.UserSignup

	// a malformed body leaves every field absent and earns the full
	// set of not-null validation errors instead of a parser error
	_ = ctx.BodyParser(&requestBody)

	if verrs := h.validator.ValidateSignup(requestBody); len(verrs) > 0 {
		return utils.ResponseValidationErrors(ctx, verrs)
	}

	if err := h.svc.Register(requestBody); err != nil {
		if errors.Is(err, services.ErrEmailDelivery) {
			return utils.ResponseMessage(ctx, fiber.StatusBadGateway, "E-mail Failure")
		}
		return utils.ResponseMessage(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "User created")
}

func (h *UserHandler) Activate(ctx *fiber.Ctx) error {
	token := ctx.Params("token")

	if err := h.svc.Activate(token); err != nil {
		if errors.Is(err, services.ErrInvalidActivation) {
			return utils.ResponseMessage(ctx, fiber.StatusBadRequest, "This account is either active or the token is invalid")
		}
		return utils.ResponseMessage(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "Account is activated")
}
