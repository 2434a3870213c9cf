package service

import (
	"fmt"
	"strconv"
	"strings"
	"talentgate/internal/model"
)

// Personal-info question identifiers. Answers to these never affect the
// classification or thresholdMet; they only enrich the narrative
// strength/development areas.
const (
	PersonalExperienceID   = "personal-experience-years"
	PersonalLocationID     = "personal-location"
	PersonalAvailabilityID = "personal-availability"
)

// Classify turns a normalized score and a case threshold into the
// qualification outcome. Two levels only: at or above threshold the
// candidate is qualified and accepted; below, they are ramp-ready and
// routed to an onboarding track rather than rejected.
func Classify(normalizedScore, threshold int, responses []model.Response, summary *model.ScoreSummary) model.Classification {
	c := model.Classification{
		ThresholdMet:     normalizedScore >= threshold,
		StrengthAreas:    []string{},
		DevelopmentAreas: []string{},
	}

	if c.ThresholdMet {
		c.Classification = model.ClassificationQualified
		c.RecommendedStatus = model.StatusAccepted
		c.EvaluationNotes = fmt.Sprintf("Scored %d against a threshold of %d; meets the qualification bar.", normalizedScore, threshold)
	} else {
		c.Classification = model.ClassificationRampReady
		c.RecommendedStatus = model.StatusPending
		c.EvaluationNotes = fmt.Sprintf("Scored %d against a threshold of %d; recommended for the onboarding track.", normalizedScore, threshold)
		c.DevelopmentAreas = append(c.DevelopmentAreas, "Core assessment score below the case threshold")
	}

	if summary != nil && summary.DominantLeadershipType != "" {
		c.StrengthAreas = append(c.StrengthAreas, "Dominant leadership profile: "+summary.DominantLeadershipType)
	}

	appendPersonalSignals(&c, responses)
	return c
}

// appendPersonalSignals derives the experience, location and availability
// buckets from the fixed personal-info answers.
func appendPersonalSignals(c *model.Classification, responses []model.Response) {
	for i := range responses {
		r := &responses[i]
		text, ok := r.Text()
		if !ok {
			continue
		}
		answer := strings.ToLower(strings.TrimSpace(text))
		if answer == "" {
			continue
		}

		switch r.QuestionID {
		case PersonalExperienceID:
			years := parseYears(answer)
			switch {
			case years >= 5:
				c.StrengthAreas = append(c.StrengthAreas, fmt.Sprintf("Seasoned: %d+ years of professional experience", years))
			case years >= 2:
				c.StrengthAreas = append(c.StrengthAreas, fmt.Sprintf("%d years of professional experience", years))
			default:
				c.DevelopmentAreas = append(c.DevelopmentAreas, "Limited professional experience")
			}

		case PersonalLocationID:
			if strings.Contains(answer, "relocat") || strings.Contains(answer, "remote") || strings.Contains(answer, "yes") {
				c.StrengthAreas = append(c.StrengthAreas, "Flexible on location or relocation")
			} else {
				c.DevelopmentAreas = append(c.DevelopmentAreas, "Location preference noted: "+text)
			}

		case PersonalAvailabilityID:
			if strings.Contains(answer, "immediate") || strings.Contains(answer, "full") {
				c.StrengthAreas = append(c.StrengthAreas, "Available immediately / full-time")
			} else {
				c.DevelopmentAreas = append(c.DevelopmentAreas, "Limited availability: "+text)
			}
		}
	}
}

// parseYears extracts the leading integer from a free-text experience
// answer ("7 years", "3+"). Anything unparseable counts as zero.
func parseYears(answer string) int {
	digits := ""
	for _, r := range answer {
		if r >= '0' && r <= '9' {
			digits += string(r)
			continue
		}
		if digits != "" {
			break
		}
	}
	years, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return years
}
