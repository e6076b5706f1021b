package models

import "time"

// User represents a registered student account.
type User struct {
	BaseModel
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
}

// EmailVerification keeps track of OTP codes sent during registration.
// Rows are deleted in bulk once an account is created; expired rows are
// otherwise left in place and simply never match again.
type EmailVerification struct {
	BaseModel
	Email     string    `gorm:"index" json:"email"`
	OTP       string    `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
}
