package controller

import (
	"minddock/internal/dto"
	"minddock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDailyLogController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	ShowByDate(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type dailyLogController struct {
	service service.IDailyLogService
}

func NewDailyLogController(service service.IDailyLogService) IDailyLogController {
	return &dailyLogController{service: service}
}

// RegisterRoutes: reads are keyed by calendar day, updates by id.
func (c *dailyLogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dailylogs")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:date", c.ShowByDate)
	h.Put("/:id", c.Update)
}

func (c *dailyLogController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *dailyLogController) ShowByDate(ctx *fiber.Ctx) error {
	res, err := c.service.ShowByDate(ctx.UserContext(), ctx.Params("date"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *dailyLogController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDailyLogRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return created(ctx, "/api/dailylogs/"+res.Date, res)
}

func (c *dailyLogController) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDailyLogRequest
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
