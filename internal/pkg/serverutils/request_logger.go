package serverutils

import (
	"time"

	"minddock/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Observer receives one call per finished request. Metrics collectors
// implement it.
type Observer interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

func RequestLogger(log logger.ILogger, observers ...Observer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		elapsed := time.Since(start)

		status := ctx.Response().StatusCode()
		if err != nil {
			status = StatusFor(err)
		}

		route := ctx.Route().Path
		for _, o := range observers {
			o.ObserveRequest(ctx.Method(), route, status, elapsed)
		}

		log.Debug("http", "request", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"route":      route,
			"status":     status,
			"latency_ms": elapsed.Milliseconds(),
		})
		return err
	}
}
