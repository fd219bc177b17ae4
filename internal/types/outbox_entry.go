package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSending = "sending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

const (
	OutboxKindChoiceSave   = "choice_save"
	OutboxKindChoicesClear = "choices_clear"
	OutboxKindActivity     = "activity"
)

// OutboxEntry is the write-ahead record for one best-effort push to the
// external profile sync API. Entries survive process restarts; the sync
// worker claims and retries them until sent or the attempt budget runs out.
type OutboxEntry struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind          string         `gorm:"column:kind;not null;index" json:"kind"`
	Payload       datatypes.JSON `gorm:"type:jsonb;column:payload" json:"payload"`
	Status        string         `gorm:"column:status;not null;default:'pending';index" json:"status"`
	Attempts      int            `gorm:"column:attempts;not null;default:0" json:"attempts"`
	NextAttemptAt *time.Time     `gorm:"column:next_attempt_at;index" json:"next_attempt_at,omitempty"`
	LastError     string         `gorm:"column:last_error" json:"last_error,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (OutboxEntry) TableName() string { return "outbox_entry" }
