// FILE: internal/controller/styling_controller.go
package controller

import (
	"errors"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/service"
	"ai-stylist-be/pkg/styling/content"

	"github.com/gofiber/fiber/v2"
)

type IStylingController interface {
	RegisterRoutes(r fiber.Router)
	Resolve(ctx *fiber.Ctx) error
}

type stylingController struct {
	stylingService service.StylingService
}

func NewStylingController(stylingService service.StylingService) IStylingController {
	return &stylingController{
		stylingService: stylingService,
	}
}

func (c *stylingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/styling/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("resolve", c.Resolve)
}

func (c *stylingController) Resolve(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	}

	var req dto.ResolveContentRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.stylingService.ResolveContent(ctx.Context(), userId, &req)
	if err != nil {
		// "Nothing to show" is an expected outcome with its own status; the
		// client dismisses the sheet instead of showing an error dialog.
		var unresolved *content.UnresolvedError
		if errors.As(err, &unresolved) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.Envelope{
				Success: false,
				Code:    fiber.StatusUnprocessableEntity,
				Message: "content unresolved",
				Data:    dto.UnresolvedResponse{Reason: unresolved.Reason},
			})
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve content", res))
}
