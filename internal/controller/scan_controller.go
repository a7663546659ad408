// FILE: internal/controller/scan_controller.go
package controller

import (
	"errors"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IScanController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
}

type scanController struct {
	scanService service.ScanService
}

func NewScanController(scanService service.ScanService) IScanController {
	return &scanController{
		scanService: scanService,
	}
}

func (c *scanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scan/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Start)
}

func (c *scanController) Start(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	}

	var req dto.StartScanRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.scanService.StartScan(ctx.Context(), userId, &req)
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

	return ctx.JSON(serverutils.SuccessResponse("Success start scan", res))
}

// quotaPayload maps a quota denial onto the pricing-modal payload.
func quotaPayload(err error) (*dto.QuotaExceededData, bool) {
	var qe *dto.QuotaExceededError
	if !errors.As(err, &qe) {
		return nil, false
	}
	return &dto.QuotaExceededData{
		ActionKind:       qe.Kind,
		Limit:            qe.Limit,
		Used:             qe.Used,
		ShowModalPricing: true,
	}, true
}
