package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"swarloop/internal/config"
	"swarloop/internal/models"
	"swarloop/internal/repository"
	"swarloop/internal/taxonomy"
)

const (
	defaultLimit    = 10
	maxLimit        = 50
	overfetchFactor = 2
)

// Validation failures. Nothing is written when these are returned.
var (
	ErrMissingMoodInput     = errors.New("either mood_event or mood_text is required")
	ErrConflictingMoodInput = errors.New("mood_event and mood_text are mutually exclusive")
	ErrInvalidLimit         = errors.New("limit must be a positive integer")
	ErrInvalidConfidence    = errors.New("confidence must be between 0 and 1 and is only valid for inferred sources")
)

// MoodRecommendationService runs the full cycle: resolve the mood
// signal, persist it, map it through the taxonomy, retrieve and rank
// candidates, and persist the ranked result.
type MoodRecommendationService interface {
	GenerateRecommendations(ctx context.Context, userID uint, req models.RecommendationRequest) (*models.RecommendationResult, error)
}

type moodRecommendationService struct {
	moodRepo   repository.MoodEventRepository
	trackRepo  repository.TrackRepository
	recRepo    repository.RecommendationRepository
	classifier MoodClassifierService
	ranker     MoodRankerService
	config     *config.Config
}

func NewMoodRecommendationService(
	moodRepo repository.MoodEventRepository,
	trackRepo repository.TrackRepository,
	recRepo repository.RecommendationRepository,
	classifier MoodClassifierService,
	ranker MoodRankerService,
) MoodRecommendationService {
	return &moodRecommendationService{
		moodRepo:   moodRepo,
		trackRepo:  trackRepo,
		recRepo:    recRepo,
		classifier: classifier,
		ranker:     ranker,
		config:     config.GlobalConfig,
	}
}

func (s *moodRecommendationService) GenerateRecommendations(ctx context.Context, userID uint, req models.RecommendationRequest) (*models.RecommendationResult, error) {
	limit := defaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	signal, err := s.resolveSignal(ctx, req)
	if err != nil {
		return nil, err
	}

	// The mood event is an audit fact: once this write commits it is
	// never rolled back, even if a later step fails.
	event := &models.MoodEvent{
		UserID:      userID,
		Source:      signal.Source,
		Label:       strings.ToLower(strings.TrimSpace(signal.Label)),
		Score:       signal.Score,
		Confidence:  signal.Confidence,
		ContextText: signal.ContextText,
	}
	if err := s.moodRepo.CreateMoodEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record mood event: %w", err)
	}

	entry := taxonomy.Resolve(event.Label)

	candidates, err := s.trackRepo.FindActiveByMoodTags(ctx, entry.TargetTags, overfetchFactor*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate tracks: %w", err)
	}

	ranked := s.ranker.Rank(candidates, entry.TargetTags, event.Label, event.Score, limit)

	reason := fmt.Sprintf("Based on %s mood (score: %g)", event.Label, event.Score)

	rec := &models.Recommendation{
		UserID:       userID,
		ModelVersion: s.config.ModelVersion,
		Reason:       reason,
		Tracks:       make([]models.RecommendationTrack, 0, len(ranked)),
	}
	for i, rt := range ranked {
		rec.Tracks = append(rec.Tracks, models.RecommendationTrack{
			TrackID: rt.Track.ID,
			Rank:    i + 1,
			Score:   rt.Score,
			Reason:  rt.Reason,
		})
	}

	if err := s.recRepo.CreateRecommendation(ctx, rec); err != nil {
		// Mood event stays; a retry creates a fresh event and a fresh
		// recommendation.
		return nil, fmt.Errorf("failed to record recommendation: %w", err)
	}

	log.Printf("[Recommendation] user=%d mood=%s candidates=%d returned=%d", userID, event.Label, len(candidates), len(ranked))

	return &models.RecommendationResult{
		MoodEvent:       *event,
		Recommendations: ranked,
		ModelVersion:    rec.ModelVersion,
		Reason:          reason,
	}, nil
}

// resolveSignal turns the request into an explicit mood signal. Free
// text goes through the external classifier first; classifier failures
// abort before anything is written.
func (s *moodRecommendationService) resolveSignal(ctx context.Context, req models.RecommendationRequest) (*models.MoodSignal, error) {
	hasEvent := req.MoodEvent != nil
	hasText := strings.TrimSpace(req.MoodText) != ""

	switch {
	case hasEvent && hasText:
		return nil, ErrConflictingMoodInput
	case hasEvent:
		if c := req.MoodEvent.Confidence; c != nil {
			// Confidence is produced by the classifier; a self-reported
			// mood has none.
			if req.MoodEvent.Source == models.MoodSourceSelfReport || *c < 0 || *c > 1 {
				return nil, ErrInvalidConfidence
			}
		}
		return req.MoodEvent, nil
	case hasText:
		return s.classifier.AnalyzeText(ctx, req.MoodText)
	default:
		return nil, ErrMissingMoodInput
	}
}
