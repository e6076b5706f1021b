package models

import "github.com/google/uuid"

// Purchase statuses. A purchase starts pending and an admin moves it to
// success or failed after checking the claimed bank transfer.
const (
	PurchaseStatusPending = "pending"
	PurchaseStatusSuccess = "success"
	PurchaseStatusFailed  = "failed"
)

// Purchase is a manual-payment claim for a course. Contact fields are
// denormalized onto the row so verification emails can be sent without
// joining back to the user.
type Purchase struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	CourseID      string    `json:"course_id"`
	CourseTitle   string    `json:"course_title"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `gorm:"index;default:pending" json:"status"`
}

// ValidPurchaseStatus reports whether s is a status an admin may set.
func ValidPurchaseStatus(s string) bool {
	return s == PurchaseStatusSuccess || s == PurchaseStatusFailed
}
