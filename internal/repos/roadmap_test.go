package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/compasslearn/compass-backend/internal/repos/testutil"
	"github.com/compasslearn/compass-backend/internal/types"
)

func TestRoadmapRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewRoadmapRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "roadmaprepo@example.com")
	rm := &types.Roadmap{
		ID:                  uuid.New(),
		UserID:              u.ID,
		Title:               "Technology Career Path",
		Domains:             datatypes.JSON([]byte(`["Technology"]`)),
		Skills:              datatypes.JSON([]byte(`["go","sql"]`)),
		Difficulty:          types.DifficultyIntermediate,
		EstimatedCompletion: "12-18 weeks",
		Phases:              datatypes.JSON([]byte(`[]`)),
		AIConfidence:        85,
		UserChoices:         datatypes.JSON([]byte(`[]`)),
		CareerBreakdown:     datatypes.JSON([]byte(`{"interested":[],"maybe":[]}`)),
	}
	if _, err := repo.Create(ctx, tx, []*types.Roadmap{rm}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{rm.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByUserID(ctx, tx, u.ID); err != nil || len(rows) != 1 {
		t.Fatalf("GetByUserID: err=%v len=%d", err, len(rows))
	}
}
