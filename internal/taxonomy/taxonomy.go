// Package taxonomy maps a reported mood label to the music attributes
// the recommender should target. The table is fixed at compile time and
// never mutated at runtime.
package taxonomy

import (
	"strings"
)

// FeatureRange describes the audio-feature window a mood targets.
// It is descriptive metadata carried on the resolved entry; candidate
// selection goes by mood-tag overlap alone. Zero-value bounds are open.
type FeatureRange struct {
	MinValence float64
	MaxValence float64
	MinEnergy  float64
	MaxEnergy  float64
}

// Entry is one resolved taxonomy row.
type Entry struct {
	Label      string
	TargetTags []string
	Features   *FeatureRange
}

const fallbackLabel = "neutral"

var moodTable = map[string]Entry{
	"happy": {
		Label:      "happy",
		TargetTags: []string{"happy", "uplifting", "energetic"},
		Features:   &FeatureRange{MinValence: 0.6},
	},
	"sad": {
		Label:      "sad",
		TargetTags: []string{"melancholic", "introspective", "calm"},
		Features:   &FeatureRange{MaxValence: 0.4},
	},
	"angry": {
		Label:      "angry",
		TargetTags: []string{"calm", "peaceful", "meditative"},
		Features:   &FeatureRange{MaxEnergy: 0.5},
	},
	"anxious": {
		Label:      "anxious",
		TargetTags: []string{"calm", "peaceful", "ambient"},
		Features:   &FeatureRange{MaxEnergy: 0.5},
	},
	"stressed": {
		Label:      "stressed",
		TargetTags: []string{"calm", "ambient", "meditative"},
		Features:   &FeatureRange{MaxEnergy: 0.4},
	},
	"excited": {
		Label:      "excited",
		TargetTags: []string{"energetic", "uplifting", "happy"},
		Features:   &FeatureRange{MinEnergy: 0.6},
	},
	"calm": {
		Label:      "calm",
		TargetTags: []string{"calm", "peaceful", "ambient"},
	},
	"energetic": {
		Label:      "energetic",
		TargetTags: []string{"energetic", "upbeat", "dance"},
		Features:   &FeatureRange{MinEnergy: 0.6},
	},
	"melancholic": {
		Label:      "melancholic",
		TargetTags: []string{"melancholic", "introspective", "ambient"},
		Features:   &FeatureRange{MaxValence: 0.4},
	},
	"neutral": {
		Label:      "neutral",
		TargetTags: []string{"neutral", "balanced"},
	},
}

// Resolve looks up the taxonomy entry for a mood label. Matching is
// case-insensitive; an unknown or empty label resolves to the neutral
// entry so a recommendation can always be produced.
func Resolve(label string) Entry {
	if entry, ok := moodTable[strings.ToLower(strings.TrimSpace(label))]; ok {
		return entry
	}
	return moodTable[fallbackLabel]
}

// KnownLabels returns every label the table defines.
func KnownLabels() []string {
	labels := make([]string, 0, len(moodTable))
	for label := range moodTable {
		labels = append(labels, label)
	}
	return labels
}
