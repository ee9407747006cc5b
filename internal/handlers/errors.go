package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/criteria-scorer/internal/logger"
	"alfredoptarigan/criteria-scorer/internal/models"
	"alfredoptarigan/criteria-scorer/internal/services"
)

// toFiberError maps service errors onto HTTP statuses. Messages for upstream
// failures stay generic; the details go to the log.
func toFiberError(err error) *fiber.Error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUpstreamUnavailable):
		if errors.Is(err, context.DeadlineExceeded) {
			return fiber.NewError(fiber.StatusGatewayTimeout, "language model did not answer in time")
		}
		return fiber.NewError(fiber.StatusBadGateway, "language model is unavailable")
	case errors.Is(err, services.ErrOutOfRangeScore):
		return fiber.NewError(fiber.StatusBadGateway, "language model returned a score outside the 1-5 scale")
	case errors.Is(err, services.ErrMalformedResponse):
		return fiber.NewError(fiber.StatusBadGateway, "language model returned an unusable reply")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler renders every error returned by a route as models.ErrorResponse.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	log = logger.OrNop(log)

	return func(c *fiber.Ctx, err error) error {
		fe := toFiberError(err)
		requestID := c.GetRespHeader(fiber.HeaderXRequestID)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", fe.Code),
			zap.Error(err),
		}
		if fe.Code >= fiber.StatusInternalServerError {
			log.Error("request failed", fields...)
		} else {
			log.Info("request rejected", fields...)
		}

		return c.Status(fe.Code).JSON(models.ErrorResponse{
			Error:     fe.Message,
			Code:      fe.Code,
			RequestID: requestID,
		})
	}
}
