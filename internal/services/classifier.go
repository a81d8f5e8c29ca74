package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"swarloop/internal/config"
	"swarloop/internal/models"
)

// ErrClassifierUnavailable masks provider-specific failures. Handlers
// surface it as a generic generation failure without internal details.
var ErrClassifierUnavailable = errors.New("mood classifier unavailable")

// MoodClassification is the output shape of the external ML service.
// The core trusts the shape, never the internals.
type MoodClassification struct {
	Emotions        map[string]float64 `json:"emotions"`
	DominantEmotion string             `json:"dominant_emotion"`
	Confidence      float64            `json:"confidence"`
	MoodScore       float64            `json:"mood_score"`
}

type MoodClassifierService interface {
	AnalyzeText(ctx context.Context, text string) (*models.MoodSignal, error)
	AnalyzeAudioFeatures(ctx context.Context, features map[string]float64) (*models.MoodSignal, error)
	Healthy(ctx context.Context) bool
}

type mlClassifier struct {
	baseURL string
	client  *http.Client
}

func NewMoodClassifierService() MoodClassifierService {
	cfg := config.GlobalConfig
	return &mlClassifier{
		baseURL: cfg.MLServiceURL,
		client:  &http.Client{Timeout: cfg.MLRequestTimeout},
	}
}

func (s *mlClassifier) AnalyzeText(ctx context.Context, text string) (*models.MoodSignal, error) {
	var result MoodClassification
	err := s.post(ctx, "/analyze-text-mood", map[string]interface{}{"text": text}, &result)
	if err != nil {
		return nil, err
	}

	confidence := result.Confidence
	return &models.MoodSignal{
		Source:      models.MoodSourceTextAnalysis,
		Label:       result.DominantEmotion,
		Score:       result.MoodScore,
		ContextText: text,
		Confidence:  &confidence,
	}, nil
}

func (s *mlClassifier) AnalyzeAudioFeatures(ctx context.Context, features map[string]float64) (*models.MoodSignal, error) {
	var result MoodClassification
	err := s.post(ctx, "/analyze-audio-mood", map[string]interface{}{"audio_features": features}, &result)
	if err != nil {
		return nil, err
	}

	confidence := result.Confidence
	score := result.MoodScore
	if score == 0 {
		// The audio endpoint reports emotions without a mood score;
		// fall back to the midpoint.
		score = 5
	}
	return &models.MoodSignal{
		Source:     models.MoodSourceVoiceAnalysis,
		Label:      result.DominantEmotion,
		Score:      score,
		Confidence: &confidence,
	}, nil
}

func (s *mlClassifier) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (s *mlClassifier) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[MoodClassifier] request to %s failed: %v", path, err)
		return fmt.Errorf("%w: request failed", ErrClassifierUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[MoodClassifier] %s returned status %d", path, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrClassifierUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: bad response", ErrClassifierUnavailable)
	}
	return nil
}
