package models

import "time"

// Venture is a member's startup project, parent of applications and milestones.
type Venture struct {
	VentureID   uint      `gorm:"column:venture_id;primaryKey" json:"venture_id"`
	MemberID    uint      `gorm:"not null;index" json:"member_id"`
	VentureName string    `gorm:"size:255;not null" json:"venture_name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Member *User `gorm:"foreignKey:MemberID;references:UserID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

// TableName specifies the table name for GORM
func (Venture) TableName() string {
	return "ventures"
}
