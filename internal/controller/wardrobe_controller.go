// FILE: internal/controller/wardrobe_controller.go
package controller

import (
	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWardrobeController interface {
	RegisterRoutes(r fiber.Router)
	AddItem(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type wardrobeController struct {
	wardrobeService service.WardrobeService
}

func NewWardrobeController(wardrobeService service.WardrobeService) IWardrobeController {
	return &wardrobeController{
		wardrobeService: wardrobeService,
	}
}

func (c *wardrobeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wardrobe/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("items", c.AddItem)
	h.Get("items", c.List)
}

func (c *wardrobeController) AddItem(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	}

	var req dto.AddWardrobeItemRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.wardrobeService.AddItem(ctx.Context(), userId, &req)
	if err != nil {
		if payload, ok := quotaPayload(err); ok {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.Envelope{
				Success: false,
				Code:    fiber.StatusTooManyRequests,
				Message: "quota exceeded",
				Data:    payload,
			})
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add wardrobe item", res))
}

func (c *wardrobeController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	}

	res, err := c.wardrobeService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list wardrobe items", res))
}
