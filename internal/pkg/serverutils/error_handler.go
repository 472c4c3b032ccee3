package serverutils

import (
	"errors"

	"minddock/internal/pkg/apperror"
	"minddock/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a handler error to the HTTP status it should produce.
func StatusFor(err error) int {
	if kind, ok := apperror.KindOf(err); ok {
		switch kind {
		case apperror.KindValidation:
			return fiber.StatusBadRequest
		case apperror.KindNotFound:
			return fiber.StatusNotFound
		case apperror.KindConflict:
			return fiber.StatusConflict
		}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fiber.StatusBadRequest
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return fiber.StatusInternalServerError
}

func messageFor(err error, status int) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ValidationMessage(verrs)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Message
	}

	if status >= fiber.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON
// error body. Unexpected failures are logged; their details stay server side.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err,
			})
		}

		return ctx.Status(status).JSON(ErrorResponse(status, messageFor(err, status)))
	}
}

// BadRequest is returned by controllers when the body cannot be decoded.
func BadRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}
