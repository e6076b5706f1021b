package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/mailer"
	"github.com/Prithwiraj731/Money-Miners/internal/models"
	"github.com/Prithwiraj731/Money-Miners/internal/utils"
)

const otpTTL = 10 * time.Minute

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	mail     *mailer.Dispatcher
	mailMock bool
	log      *logrus.Logger
}

// NewAuthHandler constructs an AuthHandler. mailMock marks that no real
// mail transport is configured and OTP codes only appear in the log.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, mail *mailer.Dispatcher, mailMock bool, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, mail: mail, mailMock: mailMock, log: log}
}

type sendOtpRequest struct {
	Email string `json:"email"`
}

// SendOtp emails a verification code to an address that is not yet
// registered. Repeated requests each create a fresh row; verification
// later picks the newest one.
func (h *AuthHandler) SendOtp(c *fiber.Ctx) error {
	var req sendOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email is required")
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "User already exists with this email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate verification code")
	}

	verification := models.EmailVerification{
		Email:     req.Email,
		OTP:       otp,
		ExpiresAt: time.Now().Add(otpTTL),
		Verified:  false,
	}

	if err := h.db.Create(&verification).Error; err != nil {
		return err
	}

	h.mail.Enqueue(mailer.OTPMessage(req.Email, otp))

	if h.mailMock {
		return c.JSON(fiber.Map{"message": "OTP sent (Check server console for mock)"})
	}

	return c.JSON(fiber.Map{"message": "OTP sent successfully to your email."})
}

type registerRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

// Register creates an account once the OTP checks out.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" || req.Username == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	var verification models.EmailVerification
	err := h.db.Where("email = ? AND otp = ? AND expires_at >= ?", req.Email, req.OTP, time.Now()).
		Order("created_at desc").
		First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired OTP")
		}
		return err
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusBadRequest, "User already exists")
		}
		return err
	}

	// Cleanup is best-effort and not transactional with the insert;
	// a leftover row is inert once consumed or expired.
	if err := h.db.Where("email = ?", req.Email).Delete(&models.EmailVerification{}).Error; err != nil {
		h.log.WithError(err).WithField("email", req.Email).Warn("failed to clean up OTP rows")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully!"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing user. Unknown email and wrong
// password return the same message to avoid user enumeration.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateUserToken(h.cfg.JWTSecret, user.ID, user.Username, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}
