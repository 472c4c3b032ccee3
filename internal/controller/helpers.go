package controller

import (
	"minddock/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.BadRequest("id must be a UUID")
	}
	return id, nil
}

// bindBody decodes and validates a JSON body.
func bindBody(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	return serverutils.ValidateRequest(req)
}

func created(ctx *fiber.Ctx, location string, body any) error {
	ctx.Location(location)
	return ctx.Status(fiber.StatusCreated).JSON(body)
}
