package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasslearn/compass-backend/internal/types"
)

func pair(cardID uuid.UUID, choice types.Choice, at time.Time) types.ChoicePair {
	return types.ChoicePair{CareerCardID: cardID, Choice: choice, ChosenAt: at}
}

func TestMergeChoiceSetsLaterTimestampWins(t *testing.T) {
	cardID := uuid.New()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	local := []types.ChoicePair{pair(cardID, types.ChoiceMaybe, base)}
	remote := []types.ChoicePair{pair(cardID, types.ChoiceInterested, base.Add(time.Hour))}

	merged := MergeChoiceSets(local, remote)
	require.Len(t, merged, 1)
	assert.Equal(t, types.ChoiceInterested, merged[0].Choice)

	// and the reverse: a newer local swipe beats a stale remote one
	local[0].ChosenAt = base.Add(2 * time.Hour)
	merged = MergeChoiceSets(local, remote)
	require.Len(t, merged, 1)
	assert.Equal(t, types.ChoiceMaybe, merged[0].Choice)
}

func TestMergeChoiceSetsRemoteWinsExactTie(t *testing.T) {
	cardID := uuid.New()
	at := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	local := []types.ChoicePair{pair(cardID, types.ChoiceNotInterested, at)}
	remote := []types.ChoicePair{pair(cardID, types.ChoiceInterested, at)}

	merged := MergeChoiceSets(local, remote)
	require.Len(t, merged, 1)
	assert.Equal(t, types.ChoiceInterested, merged[0].Choice)
}

func TestMergeChoiceSetsUnionsDisjointCards(t *testing.T) {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	cardA, cardB, cardC := uuid.New(), uuid.New(), uuid.New()

	local := []types.ChoicePair{
		pair(cardB, types.ChoiceMaybe, base.Add(time.Minute)),
		pair(cardA, types.ChoiceInterested, base),
	}
	remote := []types.ChoicePair{
		pair(cardC, types.ChoiceNotInterested, base.Add(2*time.Minute)),
	}

	merged := MergeChoiceSets(local, remote)
	require.Len(t, merged, 3)
	// chronological order regardless of source
	assert.Equal(t, cardA, merged[0].CareerCardID)
	assert.Equal(t, cardB, merged[1].CareerCardID)
	assert.Equal(t, cardC, merged[2].CareerCardID)
}

func TestMergeChoiceSetsEmptySides(t *testing.T) {
	cardID := uuid.New()
	at := time.Now()

	assert.Empty(t, MergeChoiceSets(nil, nil))

	onlyLocal := MergeChoiceSets([]types.ChoicePair{pair(cardID, types.ChoiceMaybe, at)}, nil)
	require.Len(t, onlyLocal, 1)

	onlyRemote := MergeChoiceSets(nil, []types.ChoicePair{pair(cardID, types.ChoiceMaybe, at)})
	require.Len(t, onlyRemote, 1)
}
