package models

// Contact is a general contact-form submission. Exclusive-plan inquiries
// are notification-only and are not persisted.
type Contact struct {
	BaseModel
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondary_phone"`
	Address        string `json:"address"`
	Query          string `json:"query"`
}
