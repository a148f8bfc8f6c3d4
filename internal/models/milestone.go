package models

import "time"

// Milestone tracks a venture's progress toward a dated goal.
type Milestone struct {
	MilestoneID uint            `gorm:"column:milestone_id;primaryKey" json:"milestone_id"`
	VentureID   uint            `gorm:"not null;index" json:"venture_id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Status      MilestoneStatus `gorm:"type:varchar(20);default:'not_started'" json:"status"`
	DueDate     *time.Time      `gorm:"type:date" json:"due_date"`

	Venture *Venture `gorm:"foreignKey:VentureID;references:VentureID;constraint:OnDelete:CASCADE" json:"venture,omitempty"`
}

// TableName specifies the table name for GORM
func (Milestone) TableName() string {
	return "milestones"
}
