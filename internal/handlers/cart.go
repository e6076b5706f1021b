package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Prithwiraj731/Money-Miners/internal/middleware"
	"github.com/Prithwiraj731/Money-Miners/internal/models"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	db *gorm.DB
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db}
}

type addToCartRequest struct {
	CourseID string `json:"courseId"`
}

// AddToCart inserts a cart row. The composite unique index turns a
// duplicate add into "Course already in cart".
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.CourseID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID is required")
	}

	item := models.CartItem{
		UserID:   userID,
		CourseID: req.CourseID,
		AddedAt:  time.Now(),
	}

	if err := h.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusBadRequest, "Course already in cart")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Course added to cart successfully",
		"cartItem": item,
	})
}

// GetCart returns the user's cart, most recently added first.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var items []models.CartItem
	if err := h.db.Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"cart": items})
}

// RemoveFromCart deletes a cart row. Removing a course that is not in
// the cart is not an error.
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	courseID := c.Params("courseId")
	if err := h.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.CartItem{}).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Course removed from cart successfully"})
}
