package controller

import (
	"ai-grading-be/internal/pkg/serverutils"
	"ai-grading-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type healthController struct {
	llmProvider llm.LLMProvider
}

func NewHealthController(llmProvider llm.LLMProvider) IHealthController {
	return &healthController{
		llmProvider: llmProvider,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health/v1")
	h.Get("", c.Check)
}

func (c *healthController) Check(ctx *fiber.Ctx) error {
	status := fiber.Map{
		"api": "ok",
		"llm": "ok",
	}

	if err := c.llmProvider.HealthCheck(ctx.Context()); err != nil {
		status["llm"] = "unavailable"
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse(fiber.StatusServiceUnavailable, "llm provider unavailable"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success health check", status))
}
