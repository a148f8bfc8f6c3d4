package models

import "time"

// User represents a platform account: a member, mentor, or admin.
type User struct {
	UserID         uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	FirstName      string    `gorm:"size:100;not null" json:"first_name"`
	LastName       string    `gorm:"size:100;not null" json:"last_name"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	Role           Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	IsApproved     bool      `gorm:"default:false" json:"is_approved"`
	ProfileDetails string    `gorm:"type:text" json:"profile_details"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
