package chat

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"tanim-backend/internal/database"
)

// SQLite only supports one writer at a time, so we need a lock
// whenever we write to the database
var dbMutex sync.Mutex

// SaveMessage validates the role, stamps UTC timestamps, and persists the
// message. The message's ID is populated on return.
func SaveMessage(db *gorm.DB, message *database.Message) error {
	if message.Role != database.RoleUser && message.Role != database.RoleAssistant {
		return fmt.Errorf("invalid message role %q", message.Role)
	}

	if message.Model == "" {
		message.Model = database.DefaultModel
	}

	now := time.Now().UTC()
	message.CreatedAt = now
	message.UpdatedAt = now

	dbMutex.Lock()
	defer dbMutex.Unlock()
	return db.Create(message).Error
}

// RecentMessages returns up to limit of the newest messages for a session,
// in chronological order. The sort is enforced here rather than relying on
// the store's natural order, so the "last N messages" contract holds on any
// backend. ID breaks ties for rows created within the same clock tick.
func RecentMessages(db *gorm.DB, sessionID string, limit int) ([]database.Message, error) {
	var page []database.Message
	err := db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&page).
		Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}
	return page, nil
}
