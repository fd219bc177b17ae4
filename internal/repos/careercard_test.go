package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/compasslearn/compass-backend/internal/repos/testutil"
)

func TestCareerCardRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewCareerCardRepo(db, testutil.Logger(t))

	c1 := testutil.SeedCard(t, ctx, tx, "Technology", 85)
	c2 := testutil.SeedCard(t, ctx, tx, "Technology", 90)
	c3 := testutil.SeedCard(t, ctx, tx, "Healthcare", 70)

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{c1.ID, c3.ID}); err != nil || len(rows) != 2 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}

	rows, err := repo.GetByDomainNames(ctx, tx, []string{"Technology"})
	if err != nil || len(rows) != 2 {
		t.Fatalf("GetByDomainNames: err=%v len=%d", err, len(rows))
	}

	excl, err := repo.GetBySourceExcluding(ctx, tx, "seed", []uuid.UUID{c1.ID, c2.ID}, 10)
	if err != nil {
		t.Fatalf("GetBySourceExcluding: %v", err)
	}
	for _, c := range excl {
		if c.ID == c1.ID || c.ID == c2.ID {
			t.Fatalf("GetBySourceExcluding returned excluded id %v", c.ID)
		}
	}
	found := false
	for _, c := range excl {
		if c.ID == c3.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("GetBySourceExcluding missing non-excluded card")
	}
}
