package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Roadmap struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User                *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title               string         `gorm:"column:title;not null" json:"title"`
	Domains             datatypes.JSON `gorm:"type:jsonb;column:domains" json:"domains"`
	Skills              datatypes.JSON `gorm:"type:jsonb;column:skills" json:"skills"`
	Difficulty          Difficulty     `gorm:"column:difficulty;not null" json:"difficulty"`
	EstimatedCompletion string         `gorm:"column:estimated_completion" json:"estimated_completion"`
	Phases              datatypes.JSON `gorm:"type:jsonb;column:phases" json:"phases"`
	AIConfidence        int            `gorm:"column:ai_confidence;not null;default:0" json:"ai_confidence"`
	UserChoices         datatypes.JSON `gorm:"type:jsonb;column:user_choices" json:"user_choices"`
	CareerBreakdown     datatypes.JSON `gorm:"type:jsonb;column:career_breakdown" json:"career_breakdown"`
	CreatedAt           time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (Roadmap) TableName() string { return "roadmap" }

type RoadmapStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RoadmapPhase struct {
	Name     string        `json:"name"`
	Duration string        `json:"duration"`
	Steps    []RoadmapStep `json:"steps"`
}

// CareerBreakdown splits the chosen career titles by reaction.
type CareerBreakdown struct {
	Interested []string `json:"interested"`
	Maybe      []string `json:"maybe"`
}

// ChoicePair is the (careerID, choice) projection embedded in a roadmap.
type ChoicePair struct {
	CareerCardID uuid.UUID `json:"career_card_id"`
	Choice       Choice    `json:"choice"`
	ChosenAt     time.Time `json:"chosen_at"`
}

// InterestProfile is the on-demand summary of a user's accumulated choices.
// It is computed, returned and discarded; only roadmaps are persisted.
type InterestProfile struct {
	InterestedCount    int        `json:"interested_count"`
	MaybeCount         int        `json:"maybe_count"`
	NotInterestedCount int        `json:"not_interested_count"`
	TopCategories      []string   `json:"top_categories"`
	AverageGrowth      int        `json:"average_growth"`
	TopDifficulty      Difficulty `json:"top_difficulty"`
	Insights           []string   `json:"insights"`
}
