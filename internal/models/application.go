package models

import "time"

// Application is a venture's submission to a program, reviewed by admins.
// The unique index on venture_id closes the duplicate-submission race at the
// storage layer; handlers still pre-check for the friendlier error message.
type Application struct {
	ApplicationID  uint              `gorm:"column:application_id;primaryKey" json:"application_id"`
	VentureID      uint              `gorm:"not null;uniqueIndex:idx_applications_venture" json:"venture_id"`
	ProgramID      *uint             `json:"program_id"`
	Status         ApplicationStatus `gorm:"type:varchar(20);default:'submitted';index" json:"status"`
	SubmissionDate time.Time         `gorm:"autoCreateTime" json:"submission_date"`
	ReviewedBy     *uint             `json:"reviewed_by"`
	ReviewedAt     *time.Time        `json:"reviewed_at"`

	Venture  *Venture `gorm:"foreignKey:VentureID;references:VentureID;constraint:OnDelete:CASCADE" json:"venture,omitempty"`
	Program  *Program `gorm:"foreignKey:ProgramID;references:ProgramID;constraint:OnDelete:CASCADE" json:"program,omitempty"`
	Reviewer *User    `gorm:"foreignKey:ReviewedBy;references:UserID" json:"reviewer,omitempty"`
}

// TableName specifies the table name for GORM
func (Application) TableName() string {
	return "applications"
}
