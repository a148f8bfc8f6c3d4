package models

import "time"

// Program is an admin-defined accelerator offering that ventures apply to.
// Deletion is soft: IsActive flips to 0 and the row is kept.
type Program struct {
	ProgramID           uint       `gorm:"column:program_id;primaryKey" json:"program_id"`
	Title               string     `gorm:"size:200;not null" json:"title"`
	Description         string     `gorm:"type:text;not null" json:"description"`
	Requirements        string     `gorm:"type:text" json:"requirements"`
	Benefits            string     `gorm:"type:text" json:"benefits"`
	Duration            string     `gorm:"size:100" json:"duration"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsActive            int        `gorm:"default:1;index" json:"is_active"`
	CreatedBy           uint       `gorm:"not null" json:"created_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	Creator *User `gorm:"foreignKey:CreatedBy;references:UserID" json:"creator,omitempty"`
}

// TableName specifies the table name for GORM
func (Program) TableName() string {
	return "programs"
}
