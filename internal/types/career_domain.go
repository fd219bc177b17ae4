package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CareerDomain struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Icon      string         `gorm:"column:icon" json:"icon"`
	Color     string         `gorm:"column:color" json:"color"`
	Skills    datatypes.JSON `gorm:"type:jsonb;column:skills" json:"skills"`
	Careers   datatypes.JSON `gorm:"type:jsonb;column:careers" json:"careers"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (CareerDomain) TableName() string { return "career_domain" }

// DomainProjection is the per-user view of a domain. It is recomputed from
// choices and explorations on every read and never persisted.
type DomainProjection struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Icon              string     `json:"icon"`
	Color             string     `json:"color"`
	Skills            []string   `json:"skills"`
	Careers           []string   `json:"careers"`
	InterestLevel     int        `json:"interest_level"`
	TotalInteractions int        `json:"total_interactions"`
	LastInteracted    *time.Time `json:"last_interacted,omitempty"`
}
