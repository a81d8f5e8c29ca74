package services

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarloop/internal/models"
)

func trackWithTags(id string, tags ...string) models.Track {
	return models.Track{ID: id, Title: id, Artist: "test", MoodTags: pq.StringArray(tags)}
}

func TestRankHappyTwoTagMatch(t *testing.T) {
	// Two matched tags: 0.5 + 0.4 = 0.9, then the midpoint adjustment
	// subtracts 0.1 x (5 - 0.9) for a final 0.49.
	ranker := NewMoodRankerService()

	ranked := ranker.Rank(
		[]models.Track{trackWithTags("t1", "happy", "uplifting")},
		[]string{"happy", "uplifting", "energetic"},
		"happy", 8, 10,
	)

	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.49, ranked[0].Score, 1e-9)
	assert.Equal(t, "Matches happy, uplifting mood tags for happy mood", ranked[0].Reason)
}

func TestRankClampsToOne(t *testing.T) {
	// Five matched tags push the running score to 1.5; the adjustment
	// brings it to 1.15 and the final clamp caps it at 1.
	ranker := NewMoodRankerService()
	tags := []string{"a", "b", "c", "d", "e"}

	ranked := ranker.Rank(
		[]models.Track{trackWithTags("t1", tags...)},
		tags, "happy", 5, 10,
	)

	require.Len(t, ranked, 1)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
}

func TestRankScoresStayInUnitInterval(t *testing.T) {
	ranker := NewMoodRankerService()
	targets := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	candidates := make([]models.Track, 0, len(targets)+1)
	candidates = append(candidates, trackWithTags("none", "zzz"))
	for i := range targets {
		candidates = append(candidates, trackWithTags(fmt.Sprintf("t%d", i), targets[:i+1]...))
	}

	ranked := ranker.Rank(candidates, targets, "happy", 7, len(candidates))
	require.Len(t, ranked, len(candidates))
	for _, rt := range ranked {
		assert.GreaterOrEqual(t, rt.Score, 0.0)
		assert.LessOrEqual(t, rt.Score, 1.0)
	}
}

func TestRankNoMatchesStillProducesReason(t *testing.T) {
	ranker := NewMoodRankerService()

	ranked := ranker.Rank(
		[]models.Track{trackWithTags("t1", "metal")},
		[]string{"calm", "peaceful"},
		"calm", 3, 10,
	)

	require.Len(t, ranked, 1)
	// Zero matches: the tag list renders empty but the sentence stays.
	assert.Equal(t, "Matches  mood tags for calm mood", ranked[0].Reason)
	assert.InDelta(t, 0.05, ranked[0].Score, 1e-9)
}

func TestRankNeutralFallbackSingleMatch(t *testing.T) {
	ranker := NewMoodRankerService()

	ranked := ranker.Rank(
		[]models.Track{trackWithTags("t1", "neutral")},
		[]string{"neutral", "balanced"},
		"foo", 5, 10,
	)

	require.Len(t, ranked, 1)
	assert.Equal(t, "Matches neutral mood tags for foo mood", ranked[0].Reason)
}

func TestRankOrdersDescendingWithStableTies(t *testing.T) {
	ranker := NewMoodRankerService()
	targets := []string{"happy", "uplifting", "energetic"}

	candidates := []models.Track{
		trackWithTags("low", "happy"),
		trackWithTags("tie-a", "happy", "uplifting"),
		trackWithTags("high", "happy", "uplifting", "energetic"),
		trackWithTags("tie-b", "uplifting", "energetic"),
	}

	ranked := ranker.Rank(candidates, targets, "happy", 8, 10)
	require.Len(t, ranked, 4)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	assert.Equal(t, "high", ranked[0].Track.ID)
	// Equal scores keep retrieval order.
	assert.Equal(t, "tie-a", ranked[1].Track.ID)
	assert.Equal(t, "tie-b", ranked[2].Track.ID)
	assert.Equal(t, "low", ranked[3].Track.ID)
}

func TestRankTruncatesToLimit(t *testing.T) {
	ranker := NewMoodRankerService()
	candidates := []models.Track{
		trackWithTags("t1", "calm"),
		trackWithTags("t2", "calm"),
		trackWithTags("t3", "calm"),
		trackWithTags("t4", "calm"),
	}

	ranked := ranker.Rank(candidates, []string{"calm"}, "calm", 5, 2)
	assert.Len(t, ranked, 2)

	ranked = ranker.Rank(candidates[:1], []string{"calm"}, "calm", 5, 10)
	assert.Len(t, ranked, 1)
}

func TestRankNonPositiveLimitReturnsEmpty(t *testing.T) {
	ranker := NewMoodRankerService()
	candidates := []models.Track{
		trackWithTags("t1", "calm"),
		trackWithTags("t2", "calm"),
	}

	assert.Empty(t, ranker.Rank(candidates, []string{"calm"}, "calm", 5, 0))
	assert.Empty(t, ranker.Rank(candidates, []string{"calm"}, "calm", 5, -1))
}

func TestRankEmptyCandidates(t *testing.T) {
	ranker := NewMoodRankerService()
	ranked := ranker.Rank(nil, []string{"calm"}, "calm", 5, 10)
	assert.Empty(t, ranked)
}

func TestRankIsDeterministic(t *testing.T) {
	ranker := NewMoodRankerService()
	targets := []string{"happy", "uplifting", "energetic"}
	candidates := []models.Track{
		trackWithTags("t1", "happy", "uplifting"),
		trackWithTags("t2", "energetic"),
		trackWithTags("t3", "happy", "energetic", "uplifting"),
		trackWithTags("t4"),
	}

	first := ranker.Rank(candidates, targets, "happy", 8, 10)
	second := ranker.Rank(candidates, targets, "happy", 8, 10)

	require.Equal(t, first, second)
}
