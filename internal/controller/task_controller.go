package controller

import (
	"minddock/internal/dto"
	"minddock/internal/pkg/serverutils"
	"minddock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type taskController struct {
	service service.ITaskService
}

func NewTaskController(service service.ITaskService) ITaskController {
	return &taskController{service: service}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tasks")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
}

func (c *taskController) GetAll(ctx *fiber.Ctx) error {
	var filter dto.TaskFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return serverutils.BadRequest("invalid query")
	}
	if err := serverutils.ValidateRequest(&filter); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.UserContext(), &filter)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *taskController) Show(ctx *fiber.Ctx) error {
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

func (c *taskController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return created(ctx, "/api/tasks/"+res.Id.String(), res)
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
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
