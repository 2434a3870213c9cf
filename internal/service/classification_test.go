package service

import (
	"encoding/json"
	"talentgate/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyThresholdBoundary(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		threshold  int
		wantClass  string
		wantStatus string
		wantMet    bool
	}{
		{"above threshold", 85, 70, model.ClassificationQualified, model.StatusAccepted, true},
		{"exactly at threshold", 70, 70, model.ClassificationQualified, model.StatusAccepted, true},
		{"one below threshold", 69, 70, model.ClassificationRampReady, model.StatusPending, false},
		{"zero score", 0, 70, model.ClassificationRampReady, model.StatusPending, false},
		{"zero threshold accepts everyone", 0, 0, model.ClassificationQualified, model.StatusAccepted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.score, tt.threshold, nil, nil)
			assert.Equal(t, tt.wantMet, c.ThresholdMet)
			assert.Equal(t, tt.wantClass, c.Classification)
			assert.Equal(t, tt.wantStatus, c.RecommendedStatus)
			assert.NotEmpty(t, c.EvaluationNotes)
		})
	}
}

func TestClassifyBelowThresholdNamesDevelopmentArea(t *testing.T) {
	c := Classify(40, 70, nil, nil)
	require.NotEmpty(t, c.DevelopmentAreas)
	assert.Contains(t, c.DevelopmentAreas[0], "below the case threshold")
}

func TestClassifyCarriesDominantArchetype(t *testing.T) {
	summary := &model.ScoreSummary{DominantLeadershipType: "teknik-leader"}
	c := Classify(80, 70, nil, summary)
	require.NotEmpty(t, c.StrengthAreas)
	assert.Contains(t, c.StrengthAreas[0], "teknik-leader")
}

func personalAnswer(id, text string) model.Response {
	raw, _ := json.Marshal(text)
	return model.Response{QuestionID: id, Answer: json.RawMessage(raw)}
}

func TestClassifyPersonalExperienceSignals(t *testing.T) {
	tests := []struct {
		name            string
		answer          string
		wantStrength    bool
		wantDevelopment bool
	}{
		{"seasoned", "7 years", true, false},
		{"mid experience", "3 years", true, false},
		{"junior", "1 year", false, true},
		{"unparseable", "a while now", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(90, 70, []model.Response{personalAnswer(PersonalExperienceID, tt.answer)}, nil)
			if tt.wantStrength {
				assert.NotEmpty(t, c.StrengthAreas)
			}
			if tt.wantDevelopment {
				assert.NotEmpty(t, c.DevelopmentAreas)
			} else {
				assert.Empty(t, c.DevelopmentAreas)
			}
		})
	}
}

func TestClassifyLocationAndAvailabilitySignals(t *testing.T) {
	c := Classify(90, 70, []model.Response{
		personalAnswer(PersonalLocationID, "Berlin, open to remote"),
		personalAnswer(PersonalAvailabilityID, "immediate"),
	}, nil)

	require.Len(t, c.StrengthAreas, 2)
	assert.Contains(t, c.StrengthAreas[0], "location")
	assert.Contains(t, c.StrengthAreas[1], "immediately")

	c = Classify(90, 70, []model.Response{
		personalAnswer(PersonalLocationID, "Berlin only"),
		personalAnswer(PersonalAvailabilityID, "three month notice period"),
	}, nil)

	require.Len(t, c.DevelopmentAreas, 2)
}

func TestClassifyIgnoresEmptyAndNonTextAnswers(t *testing.T) {
	c := Classify(90, 70, []model.Response{
		personalAnswer(PersonalLocationID, "   "),
		{QuestionID: PersonalAvailabilityID, Answer: json.RawMessage(`42`)},
	}, nil)

	assert.Empty(t, c.StrengthAreas)
	assert.Empty(t, c.DevelopmentAreas)
}

func TestParseYears(t *testing.T) {
	assert.Equal(t, 7, parseYears("7 years"))
	assert.Equal(t, 3, parseYears("3+"))
	assert.Equal(t, 12, parseYears("about 12 years, mostly backend"))
	assert.Equal(t, 0, parseYears("none"))
	assert.Equal(t, 0, parseYears(""))
}
