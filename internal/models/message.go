package models

import "time"

// Message is a direct message between two users. Content is immutable after
// creation; only the receiver may flip IsRead, and only the sender may delete.
type Message struct {
	MessageID  uint      `gorm:"column:message_id;primaryKey" json:"message_id"`
	SenderID   uint      `gorm:"not null;index;check:chk_sender_not_receiver,sender_id <> receiver_id" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SentAt     time.Time `gorm:"autoCreateTime" json:"sent_at"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`

	Sender   *User `gorm:"foreignKey:SenderID;references:UserID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID;references:UserID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
