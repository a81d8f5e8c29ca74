package services

import (
	"fmt"
	"sort"
	"strings"

	"swarloop/internal/models"
)

const (
	baseScore      = 0.5
	tagMatchWeight = 0.2
	midpointWeight = 0.1
	scoreMidpoint  = 5.0
)

// MoodRankerService scores candidate tracks against a target tag set and
// returns them ranked with a per-track explanation. Pure computation,
// no I/O. A non-positive limit yields an empty result.
type MoodRankerService interface {
	Rank(candidates []models.Track, targetTags []string, label string, intensity float64, limit int) []models.RankedTrack
}

type moodRanker struct{}

func NewMoodRankerService() MoodRankerService {
	return &moodRanker{}
}

// Rank applies the fixed scoring contract:
//   - base 0.5, plus 0.2 per mood tag shared with the target set
//   - midpoint adjustment of 0.1 x (score - 5), pulling scores away from
//     the 5.0 midpoint in whichever direction they already sit
//   - clamp to [0, 1] only after the adjustment
//
// Intensity travels with the signal for the audit record; the adjustment
// keys off the running score. Sorting is stable so equal scores keep
// their retrieval order.
func (s *moodRanker) Rank(candidates []models.Track, targetTags []string, label string, intensity float64, limit int) []models.RankedTrack {
	targets := make(map[string]bool, len(targetTags))
	for _, tag := range targetTags {
		targets[tag] = true
	}

	ranked := make([]models.RankedTrack, 0, len(candidates))
	for _, track := range candidates {
		matched := make([]string, 0, len(track.MoodTags))
		for _, tag := range track.MoodTags {
			if targets[tag] {
				matched = append(matched, tag)
			}
		}

		score := baseScore + tagMatchWeight*float64(len(matched))
		if score > scoreMidpoint {
			score += midpointWeight * (score - scoreMidpoint)
		} else {
			score -= midpointWeight * (scoreMidpoint - score)
		}
		score = clamp(score, 0, 1)

		ranked = append(ranked, models.RankedTrack{
			Track:  track,
			Score:  score,
			Reason: fmt.Sprintf("Matches %s mood tags for %s mood", strings.Join(matched, ", "), label),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit < 0 {
		limit = 0
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
