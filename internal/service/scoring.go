package service

import (
	"math"
	"sort"
	"talentgate/internal/config"
	"talentgate/internal/model"
)

// The scoring engine is a pure, total function over one whole response
// batch. Malformed or missing answers never fail a pass; they contribute
// zero and are recorded as skipped in the breakdown. Rule precedence per
// question: personal-info skip, leadership-mapped, preference,
// category-weighted, scalar.

// Score evaluates the response batch against the question definitions.
func Score(responses []model.Response, questions []model.Question, cfg config.AssessmentConfig) model.ScoreSummary {
	byQuestion := make(map[string]*model.Response, len(responses))
	for i := range responses {
		r := &responses[i]
		if _, ok := byQuestion[r.QuestionID]; !ok {
			byQuestion[r.QuestionID] = r
		}
	}

	summary := model.ScoreSummary{
		CategoryScores:       make(map[string]float64),
		LeadershipTypeScores: make(map[string]int),
		Breakdown:            make([]model.QuestionScore, 0, len(questions)),
	}

	// Insertion order of archetypes breaks dominant-archetype ties,
	// so accumulation tracks first-encounter order explicitly.
	var archetypeOrder []string
	creditArchetype := func(archetype string, points int) {
		if _, ok := summary.LeadershipTypeScores[archetype]; !ok {
			archetypeOrder = append(archetypeOrder, archetype)
		}
		summary.LeadershipTypeScores[archetype] += points
	}

	scoreable, answered := 0, 0

	for i := range questions {
		q := &questions[i]
		resp := byQuestion[q.ID]

		entry := model.QuestionScore{QuestionID: q.ID}

		switch q.Rule() {
		case model.RuleSkip:
			entry.Skipped = true
			summary.Breakdown = append(summary.Breakdown, entry)
			continue

		case model.RuleLeadership:
			scoreable++
			entry.MaxPoints = leadershipMax(q, cfg)
			idx, ok := answerIndex(resp, q)
			if !ok {
				// Unanswered leadership items contribute zero to every
				// archetype rather than being filled with a fabricated
				// answer; Completeness tells callers how much data the
				// profile rests on.
				entry.Skipped = true
				break
			}
			answered++
			points, archetype := leadershipScore(q, idx, cfg)
			entry.Points = float64(points)
			entry.IsCorrect = true // No wrong answer in a scenario
			entry.Archetype = archetype
			creditArchetype(archetype, points)
			summary.CategoryScores[string(q.Category)] += entry.Points

		case model.RulePreference:
			scoreable++
			entry.MaxPoints = float64(cfg.PreferencePoints)
			if _, ok := answerIndex(resp, q); !ok {
				entry.Skipped = true
				break
			}
			answered++
			// Same flat score whichever option was chosen; excluded from
			// correctness semantics, so IsCorrect stays false.
			entry.Points = float64(cfg.PreferencePoints)
			summary.CategoryScores[string(q.Category)] += entry.Points

		case model.RuleCategoryWeighted:
			scoreable++
			entry.MaxPoints = categoryWeightedMax(q, cfg)
			idx, ok := answerIndex(resp, q)
			if !ok {
				entry.Skipped = true
				break
			}
			answered++
			entry.Points = categoryWeightedScore(q, idx, cfg, summary.CategoryScores)
			entry.IsCorrect = q.IsCorrectOption(idx)

		case model.RuleScalar:
			if len(q.CorrectIndices) == 0 {
				// Free-text and character items without an answer key are
				// never graded; they carry no attainable points either.
				entry.Skipped = true
				summary.Breakdown = append(summary.Breakdown, entry)
				continue
			}
			scoreable++
			entry.MaxPoints = float64(q.Points)
			correct, ok := scalarCorrect(resp, q)
			if !ok {
				entry.Skipped = true
				break
			}
			answered++
			if correct {
				entry.Points = float64(q.Points)
				entry.IsCorrect = true
				summary.CategoryScores[string(q.Category)] += entry.Points
			}
		}

		summary.RawScore += entry.Points
		summary.MaxScore += entry.MaxPoints
		summary.Breakdown = append(summary.Breakdown, entry)
	}

	summary.NormalizedScore = NormalizeScore(summary.RawScore, summary.MaxScore)
	summary.DominantLeadershipType = dominantArchetype(archetypeOrder, summary.LeadershipTypeScores)
	if scoreable > 0 {
		summary.Completeness = float64(answered) / float64(scoreable)
	}
	return summary
}

// NormalizeScore maps a raw/max pair onto [0, 100]. A zero max yields 0,
// never NaN.
func NormalizeScore(raw, max float64) int {
	if max <= 0 {
		return 0
	}
	pct := int(math.Round(raw / max * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// PhaseScoreFor scores the subset of questions belonging to one phase and
// folds the result into the per-phase aggregate.
func PhaseScoreFor(responses []model.Response, questions []model.Question, cfg config.AssessmentConfig) model.PhaseScore {
	summary := Score(responses, questions, cfg)

	ps := model.PhaseScore{
		Score:      summary.RawScore,
		MaxScore:   summary.MaxScore,
		Percentage: summary.NormalizedScore,
		HasAccess:  true,
	}
	for _, entry := range summary.Breakdown {
		if entry.Skipped && entry.MaxPoints == 0 {
			continue // Personal-info and ungraded free text
		}
		ps.TotalCount++
		if entry.IsCorrect {
			ps.CorrectCount++
		}
	}
	return ps
}

// answerIndex resolves a response to a valid option index for the
// question. Out-of-range indices count as malformed.
func answerIndex(resp *model.Response, q *model.Question) (int, bool) {
	if resp == nil {
		return 0, false
	}
	idx, ok := resp.OptionIndex()
	if !ok || idx < 0 || idx >= len(q.Options) {
		return 0, false
	}
	return idx, true
}

// scalarCorrect resolves correctness for scalar-point questions. For
// multi-choice items the selected set must exactly match the answer key.
func scalarCorrect(resp *model.Response, q *model.Question) (correct, answered bool) {
	if resp == nil {
		return false, false
	}
	if q.Type == model.QuestionTypeMultiChoice {
		idxs, ok := resp.OptionIndices()
		if !ok || len(idxs) == 0 {
			return false, false
		}
		selected := make(map[int]bool, len(idxs))
		for _, idx := range idxs {
			if idx < 0 || idx >= len(q.Options) {
				return false, false
			}
			selected[idx] = true
		}
		if len(selected) != len(q.CorrectIndices) {
			return false, true
		}
		for _, c := range q.CorrectIndices {
			if !selected[c] {
				return false, true
			}
		}
		return true, true
	}

	idx, ok := answerIndex(resp, q)
	if !ok {
		return false, false
	}
	return q.IsCorrectOption(idx), true
}

// leadershipScore awards the mapped archetype points for the chosen
// option, falling back to the fixed per-option table and the default
// archetype bucket when the question carries no mapping.
func leadershipScore(q *model.Question, idx int, cfg config.AssessmentConfig) (int, string) {
	if opt, ok := q.LeadershipScoring[idx]; ok {
		archetype := q.LeadershipMapping[idx]
		if archetype == "" {
			archetype = cfg.DefaultArchetype
		}
		return opt.Points, archetype
	}
	if len(cfg.LeadershipFallbackPoints) == 0 {
		return 0, cfg.DefaultArchetype
	}
	return cfg.LeadershipFallbackPoints[idx%len(cfg.LeadershipFallbackPoints)], cfg.DefaultArchetype
}

// leadershipMax is the highest points any single option can award.
func leadershipMax(q *model.Question, cfg config.AssessmentConfig) float64 {
	if len(q.LeadershipScoring) > 0 {
		max := 0
		for _, opt := range q.LeadershipScoring {
			if opt.Points > max {
				max = opt.Points
			}
		}
		return float64(max)
	}
	max := 0
	for i := range q.Options {
		p, _ := leadershipScore(q, i, cfg)
		if p > max {
			max = p
		}
	}
	return float64(max)
}

// categoryWeightedScore adds the chosen option's points to each category's
// running total and returns the question's overall contribution. When the
// map spans all built-in trait categories the overall score is the average
// across them, not the sum, so multi-category questions cannot dominate
// the total.
func categoryWeightedScore(q *model.Question, idx int, cfg config.AssessmentConfig, categoryScores map[string]float64) float64 {
	averaged := cfg.HasAllTraitCategories(q.CategoryPoints)

	sum, traitSum := 0.0, 0.0
	for _, key := range sortedKeys(q.CategoryPoints) {
		arr := q.CategoryPoints[key]
		if idx >= len(arr) {
			continue
		}
		pts := float64(arr[idx])
		categoryScores[key] += pts
		sum += pts
		if averaged && isTraitCategory(key, cfg) {
			traitSum += pts
		}
	}

	if averaged {
		return traitSum / float64(len(cfg.TraitCategories))
	}
	return sum
}

// categoryWeightedMax mirrors categoryWeightedScore with each category's
// best option, keeping raw and max under the same combination rule.
func categoryWeightedMax(q *model.Question, cfg config.AssessmentConfig) float64 {
	averaged := cfg.HasAllTraitCategories(q.CategoryPoints)

	sum, traitSum := 0.0, 0.0
	for key, arr := range q.CategoryPoints {
		best := 0
		for _, pts := range arr {
			if pts > best {
				best = pts
			}
		}
		sum += float64(best)
		if averaged && isTraitCategory(key, cfg) {
			traitSum += float64(best)
		}
	}

	if averaged {
		return traitSum / float64(len(cfg.TraitCategories))
	}
	return sum
}

func isTraitCategory(key string, cfg config.AssessmentConfig) bool {
	for _, trait := range cfg.TraitCategories {
		if trait == key {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// dominantArchetype picks the highest-scoring archetype; ties go to the
// first one encountered during accumulation.
func dominantArchetype(order []string, totals map[string]int) string {
	dominant, best := "", 0
	for _, archetype := range order {
		if total := totals[archetype]; dominant == "" || total > best {
			dominant, best = archetype, total
		}
	}
	return dominant
}
