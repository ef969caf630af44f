package serverutils

import (
	"errors"

	"ai-grading-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates core errors into HTTP responses.
// NotFound -> 404, InvalidModelOutput -> 422, UpstreamUnavailable -> 502,
// validation -> 400, everything else -> 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		var fiberErr *fiber.Error

		switch {
		case apperror.IsNotFound(err):
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		case apperror.IsInvalidModelOutput(err):
			return ctx.Status(fiber.StatusUnprocessableEntity).
				JSON(ErrorResponse(fiber.StatusUnprocessableEntity, err.Error()))
		case errors.Is(err, apperror.ErrConflict):
			return ctx.Status(fiber.StatusConflict).
				JSON(ErrorResponse(fiber.StatusConflict, err.Error()))
		case apperror.IsUpstream(err):
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, err.Error()))
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Error()))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
		}
	}
}
