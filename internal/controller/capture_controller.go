package controller

import (
	"minddock/internal/dto"
	"minddock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICaptureController interface {
	RegisterRoutes(r fiber.Router)
	Capture(ctx *fiber.Ctx) error
}

type captureController struct {
	service service.ICaptureService
}

func NewCaptureController(service service.ICaptureService) ICaptureController {
	return &captureController{service: service}
}

func (c *captureController) RegisterRoutes(r fiber.Router) {
	r.Post("/capture", c.Capture)
}

// Capture answers 200 rather than 201: the created record lives under
// /tasks or /notes depending on the classification.
func (c *captureController) Capture(ctx *fiber.Ctx) error {
	var req dto.CaptureRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Capture(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
