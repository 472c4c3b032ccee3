package controller

import (
	"context"
	"time"

	"minddock/internal/dto"
	"minddock/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

const (
	healthCacheKey = "db"
	healthCacheTTL = 2 * time.Second
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db     Pinger
	cache  *cache.Cache
	logger logger.ILogger
}

// NewHealthController answers the client connectivity probe. A successful
// ping is reused for healthCacheTTL. Failures are not cached.
func NewHealthController(db Pinger, logger logger.ILogger) IHealthController {
	return &healthController{
		db:     db,
		cache:  cache.New(healthCacheTTL, time.Minute),
		logger: logger,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	if _, found := c.cache.Get(healthCacheKey); found {
		return ctx.JSON(dto.HealthResponse{Status: "ok"})
	}

	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
	defer cancel()

	if err := c.db.PingContext(pingCtx); err != nil {
		c.logger.Warn("HEALTH", "Database ping failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable"})
	}

	c.cache.Set(healthCacheKey, struct{}{}, cache.DefaultExpiration)
	return ctx.JSON(dto.HealthResponse{Status: "ok"})
}
