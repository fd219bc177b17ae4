package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserExploration struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	DomainID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"domain_id"`
	Domain    *CareerDomain  `gorm:"constraint:OnDelete:CASCADE;foreignKey:DomainID;references:ID" json:"domain,omitempty"`
	Level     int            `gorm:"column:level;not null;default:0" json:"level"`
	Topics    datatypes.JSON `gorm:"type:jsonb;column:topics" json:"topics"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (UserExploration) TableName() string { return "user_exploration" }
