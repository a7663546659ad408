// FILE: internal/controller/library_controller.go
package controller

import (
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILibraryController interface {
	RegisterRoutes(r fiber.Router)
	GetCategory(ctx *fiber.Ctx) error
	Retry(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
}

type libraryController struct {
	libraryService service.LibraryService
}

func NewLibraryController(libraryService service.LibraryService) ILibraryController {
	return &libraryController{
		libraryService: libraryService,
	}
}

func (c *libraryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/library/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("state", c.State)
	h.Post("retry", c.Retry)
	h.Get(":category", c.GetCategory)
}

func (c *libraryController) GetCategory(ctx *fiber.Ctx) error {
	res, err := c.libraryService.GetCategory(ctx.Context(), ctx.Params("category"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get library category", res))
}

type retryRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
}

func (c *libraryController) Retry(ctx *fiber.Ctx) error {
	var req retryRequest
	// Context fields are optional telemetry; a bare retry body is valid.
	_ = ctx.BodyParser(&req)

	res, err := c.libraryService.Retry(ctx.Context(), req.Topic, req.Category)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success retry library fetch", res))
}

func (c *libraryController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get library state", c.libraryService.State()))
}
