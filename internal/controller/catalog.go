package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tutorlane/tutorlane/internal/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListSubjects(c *fiber.Ctx) error {
	subjects, err := h.catalog.ListSubjects(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"subjects": subjects})
}

func (h *CatalogHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.catalog.ListClasses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"classes": classes})
}

func (h *CatalogHandler) ListTeachers(c *fiber.Ctx) error {
	teachers, err := h.catalog.ListTeachers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"teachers": teachers})
}
