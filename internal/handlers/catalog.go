package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Prithwiraj731/Money-Miners/internal/catalog"
)

// CatalogHandler serves the static course list.
type CatalogHandler struct{}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListCourses returns every course.
func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"courses": catalog.Courses()})
}

// GetCourse returns one course by ID.
func (h *CatalogHandler) GetCourse(c *fiber.Ctx) error {
	course, found := catalog.Find(c.Params("id"))
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	return c.JSON(fiber.Map{"course": course})
}
