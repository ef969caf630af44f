package controller

import (
	"ai-grading-be/internal/dto"
	"ai-grading-be/internal/pkg/serverutils"
	"ai-grading-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUsageLogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type usageLogController struct {
	usageLogService service.IUsageLogService
}

func NewUsageLogController(usageLogService service.IUsageLogService) IUsageLogController {
	return &usageLogController{
		usageLogService: usageLogService,
	}
}

func (c *usageLogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/usage-log/v1")
	h.Get("", c.List)
}

func (c *usageLogController) List(ctx *fiber.Ctx) error {
	var req dto.ListUsageLogsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.usageLogService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list usage logs", res))
}
