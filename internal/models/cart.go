package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem links a user to a course they intend to buy. The composite
// unique index is what surfaces "already in cart" on a duplicate add.
type CartItem struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_course" json:"user_id"`
	CourseID string    `gorm:"uniqueIndex:idx_cart_user_course" json:"course_id"`
	AddedAt  time.Time `json:"added_at"`
}
