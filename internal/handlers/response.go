package handlers

import (
	"catalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Envelope constructors. Every endpoint answers with models.DefaultResponse;
// these keep the success/code/meta/data/error wiring in one place.

func okResult(c *fiber.Ctx, data interface{}, message string) error {
	var meta *models.Meta
	if message != "" {
		meta = &models.Meta{Message: message}
	}
	return c.Status(fiber.StatusOK).JSON(models.DefaultResponse{
		Success: true,
		Code:    fiber.StatusOK,
		Meta:    meta,
		Data:    data,
	})
}

func createdResult(c *fiber.Ctx, location string, data interface{}) error {
	c.Set(fiber.HeaderLocation, location)
	return c.Status(fiber.StatusCreated).JSON(models.DefaultResponse{
		Success: true,
		Code:    fiber.StatusCreated,
		Data:    data,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return errorResult(c, fiber.StatusBadRequest, message)
}

func notFound(c *fiber.Ctx, message string) error {
	return errorResult(c, fiber.StatusNotFound, message)
}

func unauthorized(c *fiber.Ctx, message string) error {
	return errorResult(c, fiber.StatusUnauthorized, message)
}

func internalError(c *fiber.Ctx, message string) error {
	return errorResult(c, fiber.StatusInternalServerError, message)
}

func errorResult(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(models.DefaultResponse{
		Success: false,
		Code:    code,
		Error:   &models.ErrorDetail{Message: message},
	})
}
