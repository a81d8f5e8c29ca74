package services

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarloop/internal/config"
	"swarloop/internal/models"
)

func setupClassifier(t *testing.T) MoodClassifierService {
	t.Helper()
	config.GlobalConfig = &config.Config{
		MLServiceURL: "http://ml-service.test",
	}
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
	return NewMoodClassifierService()
}

func TestAnalyzeTextDecodesClassification(t *testing.T) {
	classifier := setupClassifier(t)

	httpmock.RegisterResponder("POST", "http://ml-service.test/analyze-text-mood",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"emotions":         map[string]float64{"joy": 0.8, "sadness": 0.1},
			"dominant_emotion": "joy",
			"confidence":       0.8,
			"mood_score":       8.5,
		}))

	signal, err := classifier.AnalyzeText(context.Background(), "had a great day")
	require.NoError(t, err)

	assert.Equal(t, models.MoodSourceTextAnalysis, signal.Source)
	assert.Equal(t, "joy", signal.Label)
	assert.Equal(t, 8.5, signal.Score)
	assert.Equal(t, "had a great day", signal.ContextText)
	require.NotNil(t, signal.Confidence)
	assert.Equal(t, 0.8, *signal.Confidence)
}

func TestAnalyzeTextServerErrorIsWrapped(t *testing.T) {
	classifier := setupClassifier(t)

	httpmock.RegisterResponder("POST", "http://ml-service.test/analyze-text-mood",
		httpmock.NewStringResponder(500, `{"detail":"model not loaded"}`))

	_, err := classifier.AnalyzeText(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClassifierUnavailable)
	// Provider details must not leak through the wrapped error.
	assert.NotContains(t, err.Error(), "model not loaded")
}

func TestAnalyzeAudioFeaturesFallsBackToMidpointScore(t *testing.T) {
	classifier := setupClassifier(t)

	httpmock.RegisterResponder("POST", "http://ml-service.test/analyze-audio-mood",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"emotions":         map[string]float64{"joy": 0.6},
			"dominant_emotion": "joy",
			"confidence":       0.6,
		}))

	signal, err := classifier.AnalyzeAudioFeatures(context.Background(), map[string]float64{
		"valence": 0.7,
		"energy":  0.4,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MoodSourceVoiceAnalysis, signal.Source)
	assert.Equal(t, "joy", signal.Label)
	assert.Equal(t, 5.0, signal.Score)
}

func TestHealthy(t *testing.T) {
	classifier := setupClassifier(t)

	httpmock.RegisterResponder("GET", "http://ml-service.test/health",
		httpmock.NewStringResponder(200, `{"status":"healthy"}`))
	assert.True(t, classifier.Healthy(context.Background()))

	httpmock.RegisterResponder("GET", "http://ml-service.test/health",
		httpmock.NewStringResponder(503, `{}`))
	assert.False(t, classifier.Healthy(context.Background()))
}
