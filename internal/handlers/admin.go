package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/mailer"
	"github.com/Prithwiraj731/Money-Miners/internal/models"
	"github.com/Prithwiraj731/Money-Miners/internal/services"
	"github.com/Prithwiraj731/Money-Miners/internal/utils"
)

// AdminHandler manages the operator console endpoints.
type AdminHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	verifier services.AdminVerifier
	mail     *mailer.Dispatcher
	log      *logrus.Logger
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB, cfg *config.Config, verifier services.AdminVerifier, mail *mailer.Dispatcher, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, verifier: verifier, mail: mail, log: log}
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates the operator identity.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !h.verifier.Verify(req.Email, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Admin Credentials")
	}

	token, err := utils.GenerateAdminToken(h.cfg.JWTSecret, req.Email, h.cfg.AdminTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"message": "Admin access granted",
		"token":   token,
		"user": fiber.Map{
			"email": req.Email,
			"role":  utils.RoleAdmin,
		},
	})
}

// ListAllPurchases returns every purchase, newest first.
func (h *AdminHandler) ListAllPurchases(c *fiber.Ctx) error {
	query := h.db.Model(&models.Purchase{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var purchases []models.Purchase
	if err := query.Order("created_at desc").Find(&purchases).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"purchases": purchases})
}

type updateStatusRequest struct {
	PurchaseID string `json:"purchaseId"`
	Status     string `json:"status"`
}

// UpdatePurchaseStatus sets the verification outcome for a purchase and
// notifies the buyer. Re-updating an already-terminal purchase is
// allowed; only the status value itself is validated.
func (h *AdminHandler) UpdatePurchaseStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !models.ValidPurchaseStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "status must be success or failed")
	}

	id, err := uuid.Parse(req.PurchaseID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid purchase id")
	}

	result := h.db.Model(&models.Purchase{}).Where("id = ?", id).Update("status", req.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Purchase not found")
	}

	var purchase models.Purchase
	if err := h.db.First(&purchase, "id = ?", id).Error; err != nil {
		return err
	}

	if purchase.Email != "" {
		h.mail.Enqueue(mailer.StatusUpdateMessage(mailer.PurchaseInfo{
			CourseTitle: purchase.CourseTitle,
			FullName:    purchase.FullName,
			Email:       purchase.Email,
			Status:      purchase.Status,
		}))
	}

	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("Status updated to %s", req.Status),
		"purchase": purchase,
	})
}

// Stats returns aggregate counters for the admin dashboard.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	var totalUsers int64
	if err := h.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	var totalPurchases int64
	if err := h.db.Model(&models.Purchase{}).Count(&totalPurchases).Error; err != nil {
		return err
	}

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var statusCounts []statusCount
	if err := h.db.Model(&models.Purchase{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return err
	}

	purchasesByStatus := make(map[string]int64)
	for _, sc := range statusCounts {
		purchasesByStatus[sc.Status] = sc.Count
	}

	// Revenue counts only admin-verified purchases.
	var verifiedRevenue float64
	if err := h.db.Model(&models.Purchase{}).
		Where("status = ?", models.PurchaseStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&verifiedRevenue).Error; err != nil {
		return err
	}

	var totalContacts int64
	if err := h.db.Model(&models.Contact{}).Count(&totalContacts).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"total_users":         totalUsers,
		"total_purchases":     totalPurchases,
		"total_contacts":      totalContacts,
		"verified_revenue":    verifiedRevenue,
		"purchases_by_status": purchasesByStatus,
	})
}
