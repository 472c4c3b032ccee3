package controller

import (
	"minddock/internal/pkg/logger"
	"minddock/internal/pkg/serverutils"
	internalWS "minddock/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
}

type activityController struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewActivityController(hub *internalWS.Hub, logger logger.ILogger) IActivityController {
	return &activityController{hub: hub, logger: logger}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	r.Get("/activity/ws", c.requireUpgrade, websocket.New(c.stream))
}

func (c *activityController) requireUpgrade(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return ctx.Status(fiber.StatusUpgradeRequired).
		JSON(serverutils.ErrorResponse(fiber.StatusUpgradeRequired, "websocket upgrade required"))
}

func (c *activityController) stream(conn *websocket.Conn) {
	c.logger.Info("ACTIVITY", "Live stream opened", map[string]interface{}{"remote": conn.RemoteAddr().String()})
	internalWS.ServeWs(c.hub, conn)
	c.logger.Info("ACTIVITY", "Live stream closed", nil)
}
