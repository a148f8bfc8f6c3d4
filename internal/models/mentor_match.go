package models

import "time"

// MentorMatch is the relationship record between one mentor and one member.
// A member creates it in pending status; only the addressed mentor may move
// it to accepted or declined, and only once.
type MentorMatch struct {
	MatchID   uint        `gorm:"column:match_id;primaryKey" json:"match_id"`
	MentorID  uint        `gorm:"not null;uniqueIndex:idx_mentor_member_match;check:chk_mentor_not_member,mentor_id <> member_id" json:"mentor_id"`
	MemberID  uint        `gorm:"not null;uniqueIndex:idx_mentor_member_match" json:"member_id"`
	Status    MatchStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt time.Time   `json:"created_at"`

	Mentor *User `gorm:"foreignKey:MentorID;references:UserID;constraint:OnDelete:CASCADE" json:"mentor,omitempty"`
	Member *User `gorm:"foreignKey:MemberID;references:UserID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

// TableName specifies the table name for GORM
func (MentorMatch) TableName() string {
	return "mentormatches"
}
