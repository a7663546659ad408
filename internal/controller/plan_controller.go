// FILE: internal/controller/plan_controller.go
package controller

import (
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UsageStatus(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.PlanService
}

func NewPlanController(planService service.PlanService) IPlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plan/v1")
	h.Get("", c.List)
	h.Get("usage-status", serverutils.JwtMiddleware, c.UsageStatus)
}

func (c *planController) List(ctx *fiber.Ctx) error {
	res, err := c.planService.GetAllActivePlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get plans", res))
}

func (c *planController) UsageStatus(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).
			JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	}

	res, err := c.planService.GetUserUsageStatus(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get usage status", res))
}
