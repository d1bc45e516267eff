package database

import "time"

const (
	RoleUser      string = "user"
	RoleAssistant string = "assistant"
)

// DefaultModel is recorded on messages when the caller does not name one.
const DefaultModel = "tanim-stub"

// Message is one turn half of a conversation. Rows are immutable once
// written; a chat turn always produces a user row followed by an assistant
// row. Timestamps are stamped in UTC by the caller, not by column defaults.
type Message struct {
	ID        uint   `gorm:"primary_key"`
	SessionID string `gorm:"index;not null"`
	Role      string `gorm:"size:20;not null"`
	Content   string `gorm:"not null"`
	Model     string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
