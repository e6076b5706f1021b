package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Prithwiraj731/Money-Miners/internal/catalog"
	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/mailer"
	"github.com/Prithwiraj731/Money-Miners/internal/middleware"
	"github.com/Prithwiraj731/Money-Miners/internal/models"
)

// PurchaseHandler manages manual-payment claims.
type PurchaseHandler struct {
	db   *gorm.DB
	cfg  *config.Config
	mail *mailer.Dispatcher
	log  *logrus.Logger
}

// NewPurchaseHandler constructs PurchaseHandler.
func NewPurchaseHandler(db *gorm.DB, cfg *config.Config, mail *mailer.Dispatcher, log *logrus.Logger) *PurchaseHandler {
	return &PurchaseHandler{db: db, cfg: cfg, mail: mail, log: log}
}

type submitPurchaseRequest struct {
	CourseID      string  `json:"course_id"`
	CourseTitle   string  `json:"course_title"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
}

// SubmitPurchase records a manual bank-transfer claim. The status is
// always created as pending no matter what the request carries; only an
// admin moves it from there.
func (h *PurchaseHandler) SubmitPurchase(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req submitPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.TransactionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Transaction ID is required")
	}

	// Fill title and amount from the catalog when the client omitted them.
	if course, found := catalog.Find(req.CourseID); found {
		if req.CourseTitle == "" {
			req.CourseTitle = course.Title
		}
		if req.Amount == 0 {
			req.Amount = course.Price
		}
	} else if req.CourseTitle == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown course")
	}

	purchase := models.Purchase{
		UserID:        userID,
		CourseID:      req.CourseID,
		CourseTitle:   req.CourseTitle,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Status:        models.PurchaseStatusPending,
	}

	if err := h.db.Create(&purchase).Error; err != nil {
		return err
	}

	info := mailer.PurchaseInfo{
		CourseTitle:   purchase.CourseTitle,
		FullName:      purchase.FullName,
		Email:         purchase.Email,
		Phone:         purchase.Phone,
		Amount:        purchase.Amount,
		TransactionID: purchase.TransactionID,
		Status:        purchase.Status,
	}

	// Notification failures never fail the request; the purchase row is
	// the authoritative result.
	if h.cfg.AdminEmail != "" {
		h.mail.Enqueue(mailer.PurchaseAdminMessage(h.cfg.AdminEmail, info))
	}
	if purchase.Email != "" {
		h.mail.Enqueue(mailer.PurchaseUserMessage(info))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Purchase request submitted successfully! Pending verification.",
		"purchase": purchase,
	})
}

// GetUserPurchases returns the caller's purchases, newest first.
func (h *PurchaseHandler) GetUserPurchases(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var purchases []models.Purchase
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&purchases).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"purchases": purchases})
}

// GetPurchase returns one of the caller's purchases by ID.
func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var purchase models.Purchase
	if err := h.db.First(&purchase, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Purchase not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"purchase": purchase})
}
