package types

import (
	"time"

	"github.com/google/uuid"
)

// UserChoice is one swipe. The sequence per user is append-only; the only
// write besides Create is the full wipe done by an explicit reset.
type UserChoice struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	// Seq breaks created_at ties so the log round-trips in swipe order even
	// when two swipes land in the same microsecond.
	Seq          int64       `gorm:"autoIncrement;not null;uniqueIndex" json:"-"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User         *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CareerCardID uuid.UUID   `gorm:"type:uuid;not null;index" json:"career_card_id"`
	CareerCard   *CareerCard `gorm:"constraint:OnDelete:CASCADE;foreignKey:CareerCardID;references:ID" json:"career_card,omitempty"`
	Choice       Choice      `gorm:"column:choice;not null;index" json:"choice"`
	CreatedAt    time.Time   `gorm:"not null;default:now();index" json:"created_at"`
}

func (UserChoice) TableName() string { return "user_choice" }
