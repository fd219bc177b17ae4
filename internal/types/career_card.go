package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CareerCard rows are append-only: once a card has been shown it is never
// mutated or deleted, so choice history always resolves.
type CareerCard struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string         `gorm:"column:title;not null" json:"title"`
	DomainName      string         `gorm:"column:domain;not null;index" json:"domain"`
	Description     string         `gorm:"column:description" json:"description"`
	CoreSkills      datatypes.JSON `gorm:"type:jsonb;column:core_skills" json:"core_skills"`
	SkillCategories datatypes.JSON `gorm:"type:jsonb;column:skill_categories" json:"skill_categories"`
	Difficulty      Difficulty     `gorm:"column:difficulty;not null" json:"difficulty"`
	Growth          int            `gorm:"column:growth;not null;default:0" json:"growth"`
	Details         datatypes.JSON `gorm:"type:jsonb;column:details" json:"details"`
	Source          string         `gorm:"column:source;not null;default:'generator'" json:"source"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (CareerCard) TableName() string { return "career_card" }

// CardDetails is the free-form metadata bag carried in CareerCard.Details:
// skill progression, learning path, opportunities, market demand, skill
// versatility and future relevance. No invariants are enforced on it.
type CardDetails struct {
	SkillProgression    map[string]any `json:"skill_progression,omitempty"`
	LearningPath        map[string]any `json:"learning_path,omitempty"`
	CareerOpportunities []string       `json:"career_opportunities,omitempty"`
	MarketDemand        map[string]any `json:"market_demand,omitempty"`
	SkillVersatility    map[string]any `json:"skill_versatility,omitempty"`
	FutureRelevance     map[string]any `json:"future_relevance,omitempty"`
}
