package controller

import (
	"minddock/internal/dto"
	"minddock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWhiteboardController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type whiteboardController struct {
	service service.IWhiteboardService
}

func NewWhiteboardController(service service.IWhiteboardService) IWhiteboardController {
	return &whiteboardController{service: service}
}

func (c *whiteboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/whiteboards")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *whiteboardController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *whiteboardController) Show(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *whiteboardController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateWhiteboardRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return created(ctx, "/api/whiteboards/"+res.Id.String(), res)
}

func (c *whiteboardController) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateWhiteboardRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *whiteboardController) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
