package models

import "time"

// ResourceCategory is a lookup table grouping library resources.
type ResourceCategory struct {
	CategoryID   uint   `gorm:"column:category_id;primaryKey" json:"category_id"`
	CategoryName string `gorm:"size:100;uniqueIndex;not null" json:"category_name"`
}

// TableName specifies the table name for GORM
func (ResourceCategory) TableName() string {
	return "resourcecategories"
}

// Resource is a shared library item (guide, template, link) owned by its uploader.
type Resource struct {
	ResourceID   uint      `gorm:"column:resource_id;primaryKey" json:"resource_id"`
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	UploadedByID uint      `gorm:"not null;index" json:"uploaded_by_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	URL          string    `gorm:"size:2048" json:"url"`
	CreatedAt    time.Time `json:"created_at"`

	Category   *ResourceCategory `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	UploadedBy *User             `gorm:"foreignKey:UploadedByID;references:UserID;constraint:OnDelete:CASCADE" json:"uploaded_by,omitempty"`
}

// TableName specifies the table name for GORM
func (Resource) TableName() string {
	return "resources"
}
