package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
		Interests: datatypes.JSON([]byte(`[]`)),
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedDomain(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.CareerDomain {
	tb.Helper()
	d := &types.CareerDomain{
		ID:      uuid.New(),
		Name:    name,
		Icon:    "cpu",
		Color:   "#4F46E5",
		Skills:  datatypes.JSON([]byte(`["problem solving"]`)),
		Careers: datatypes.JSON([]byte(`["engineer"]`)),
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed domain: %v", err)
	}
	return d
}

func SeedCard(tb testing.TB, ctx context.Context, tx *gorm.DB, domainName string, growth int) *types.CareerCard {
	tb.Helper()
	c := &types.CareerCard{
		ID:              uuid.New(),
		Title:           "card " + uuid.NewString()[:8],
		DomainName:      domainName,
		Description:     "desc",
		CoreSkills:      datatypes.JSON([]byte(`["go"]`)),
		SkillCategories: datatypes.JSON([]byte(`["backend"]`)),
		Difficulty:      types.DifficultyIntermediate,
		Growth:          growth,
		Details:         datatypes.JSON([]byte(`{}`)),
		Source:          "seed",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed card: %v", err)
	}
	return c
}

func SeedChoice(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, cardID uuid.UUID, choice types.Choice) *types.UserChoice {
	tb.Helper()
	c := &types.UserChoice{
		ID:           uuid.New(),
		UserID:       userID,
		CareerCardID: cardID,
		Choice:       choice,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed choice: %v", err)
	}
	return c
}
