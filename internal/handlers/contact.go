package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/mailer"
	"github.com/Prithwiraj731/Money-Miners/internal/models"
)

// ContactHandler manages lead-capture endpoints.
type ContactHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	mail     *mailer.Dispatcher
	mailMock bool
	log      *logrus.Logger
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(db *gorm.DB, cfg *config.Config, mail *mailer.Dispatcher, mailMock bool, log *logrus.Logger) *ContactHandler {
	return &ContactHandler{db: db, cfg: cfg, mail: mail, mailMock: mailMock, log: log}
}

type contactRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondary_phone"`
	Address        string `json:"address"`
	Query          string `json:"query"`
}

// SubmitContactForm stores a contact row and notifies both sides. The
// stored row is the authoritative result; email trouble is only logged.
func (h *ContactHandler) SubmitContactForm(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.FullName == "" || req.Email == "" || req.Phone == "" || req.Address == "" || req.Query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please fill in all required fields")
	}

	contact := models.Contact{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		SecondaryPhone: req.SecondaryPhone,
		Address:        req.Address,
		Query:          req.Query,
	}

	if err := h.db.Create(&contact).Error; err != nil {
		return err
	}

	if h.mailMock {
		h.log.Warn("mail credentials not configured, contact notifications not sent")
	} else {
		info := mailer.ContactInfo{
			FullName:       contact.FullName,
			Email:          contact.Email,
			Phone:          contact.Phone,
			SecondaryPhone: contact.SecondaryPhone,
			Address:        contact.Address,
			Query:          contact.Query,
		}
		if h.cfg.AdminEmail != "" {
			h.mail.Enqueue(mailer.ContactAdminMessage(h.cfg.AdminEmail, info))
		}
		h.mail.Enqueue(mailer.ContactUserMessage(info))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Query submitted successfully! Check your email for confirmation.",
		"contact": contact,
	})
}

type inquiryRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Plan  string `json:"plan"`
	Query string `json:"query"`
}

// SendExclusiveInquiry forwards an exclusive-plan inquiry. Nothing is
// persisted, so the admin email is the actionable side and its failure
// fails the request; the user confirmation copy is best-effort.
func (h *ContactHandler) SendExclusiveInquiry(c *fiber.Ctx) error {
	var req inquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Plan == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please fill all required fields.")
	}

	if h.mailMock {
		return fiber.NewError(fiber.StatusInternalServerError, "Server misconfiguration: Email credentials missing.")
	}

	info := mailer.InquiryInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Plan:  req.Plan,
		Query: req.Query,
	}

	if err := h.mail.Send(c.UserContext(), mailer.InquiryAdminMessage(h.cfg.AdminEmail, info)); err != nil {
		h.log.WithError(err).Error("exclusive inquiry admin email failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send inquiry. Please try again.")
	}

	h.mail.Enqueue(mailer.InquiryUserMessage(info))

	return c.JSON(fiber.Map{"message": "Inquiry sent successfully! Check your email for confirmation."})
}
