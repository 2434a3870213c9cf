package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"talentgate/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "talentgate"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	questions := []interface{}{
		// Backend basics
		bankQuestion("be-basic-1", model.CategoryFirstStageTechnical, "Backend Engineer", model.DifficultyEasy,
			"A service returns HTTP 502 intermittently behind a load balancer. What do you check first?",
			[]string{"Upstream health checks and timeouts", "The client's DNS cache", "The TLS certificate chain", "The CDN edge configuration"},
			[]int{0}, 10),
		bankQuestion("be-basic-2", model.CategoryFirstStageTechnical, "Backend Engineer", model.DifficultyMedium,
			"Which isolation level prevents dirty reads while still allowing non-repeatable reads?",
			[]string{"Read committed", "Read uncommitted", "Serializable", "Snapshot"},
			[]int{0}, 10),
		bankQuestion("be-adv-1", model.CategoryAdvancedTechnical, "Backend Engineer", model.DifficultyHard,
			"A write-heavy queue consumer falls behind during traffic spikes. Which change helps most without risking data loss?",
			[]string{"Batch acknowledgements with bounded prefetch", "Drop messages over a size threshold", "Switch acknowledgements off", "Reduce the partition count"},
			[]int{0}, 15),

		// General pool
		bankQuestion("gen-basic-1", model.CategoryFirstStageTechnical, model.JobTypeAll, model.DifficultyEasy,
			"A teammate's change broke the build just before your demo. What do you do?",
			[]string{"Revert the change and tell the teammate", "Wait for the teammate to notice", "Patch around it silently", "Cancel the demo"},
			[]int{0}, 10),
		bankQuestion("gen-init-1", model.CategoryInitialAssessment, model.JobTypeAll, model.DifficultyEasy,
			"How do you usually approach a problem you have never seen before?",
			[]string{"Research prior art, then prototype", "Ask a senior engineer immediately", "Start coding and iterate", "Escalate to the team lead"},
			[]int{0, 1, 2, 3}, 5), // Preference item: every option is a valid answer

		// Leadership scenarios, shared across job types
		leadershipQuestion("lead-1",
			"Your team misses a sprint goal because two members disagreed on the design. As the lead, what is your next step?",
			[]string{
				"Run a structured design review and decide on data",
				"Pick the simpler design yourself and move on",
				"Let the two members resolve it without you",
				"Escalate the disagreement to your manager",
			},
			map[int]string{0: "teknik-leader", 1: "pragmatic-leader", 2: "delegating-leader", 3: "escalating-leader"},
			map[int]model.LeadershipOption{
				0: {Points: 20, Criteria: "Evidence-driven arbitration"},
				1: {Points: 18, Criteria: "Decisive but unilateral"},
				2: {Points: 19, Criteria: "Trusts the team to self-organize"},
				3: {Points: 17, Criteria: "Defers ownership upward"},
			}),

		// Character analysis feeding the trait categories
		traitQuestion("char-1",
			"A production incident happens during your on-call shift while you are at a family dinner. What do you do?",
			[]string{
				"Step away, acknowledge the page, and start triage",
				"Ask a teammate to cover and follow up after dinner",
				"Silence the page until dinner ends",
				"Acknowledge but wait to see if it self-resolves",
			},
			map[string][]int{
				"analytical":    {8, 5, 1, 3},
				"communication": {7, 9, 1, 2},
				"teamwork":      {6, 9, 2, 3},
				"initiative":    {9, 5, 1, 2},
			}),

		// Personal-info fields, never scored
		personalQuestion("personal-experience-years", "How many years of professional experience do you have?"),
		personalQuestion("personal-location", "Where are you located, and are you open to relocation or remote work?"),
		personalQuestion("personal-availability", "What is your availability (immediate, notice period, part-time)?"),
	}

	if _, err := db.Collection("questions").InsertMany(ctx, questions); err != nil {
		log.Fatalf("Failed to insert questions: %v", err)
	}

	evalCase := model.EvaluationCase{
		ID:         "case-backend-2026",
		Title:      "Backend Engineering Intake 2026",
		TemplateID: "default",
		JobTypes:   []string{"Backend Engineer"},
		Threshold:  70,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if _, err := db.Collection("cases").InsertOne(ctx, evalCase); err != nil {
		log.Fatalf("Failed to insert case: %v", err)
	}

	fmt.Printf("Seeded %d questions and case '%s'\n", len(questions), evalCase.Title)
}

func bankQuestion(id string, category model.Category, jobType string, difficulty model.Difficulty, text string, options []string, correct []int, points int) model.Question {
	return model.Question{
		ID:             id,
		Type:           model.QuestionTypeSingleChoice,
		Category:       category,
		JobType:        jobType,
		Difficulty:     difficulty,
		Rank:           model.DifficultyRank(difficulty),
		Text:           text,
		Options:        options,
		CorrectIndices: correct,
		Points:         points,
	}
}

func leadershipQuestion(id, text string, options []string, mapping map[int]string, scoring map[int]model.LeadershipOption) model.Question {
	return model.Question{
		ID:                id,
		Type:              model.QuestionTypeScenario,
		Category:          model.CategoryLeadershipScenario,
		JobType:           model.JobTypeAll,
		Difficulty:        model.DifficultyMedium,
		Rank:              model.DifficultyRank(model.DifficultyMedium),
		Text:              text,
		Options:           options,
		LeadershipMapping: mapping,
		LeadershipScoring: scoring,
	}
}

func traitQuestion(id, text string, options []string, categoryPoints map[string][]int) model.Question {
	return model.Question{
		ID:             id,
		Type:           model.QuestionTypeSingleChoice,
		Category:       model.CategoryCharacterAnalysis,
		JobType:        model.JobTypeAll,
		Difficulty:     model.DifficultyMedium,
		Rank:           model.DifficultyRank(model.DifficultyMedium),
		Text:           text,
		Options:        options,
		CategoryPoints: categoryPoints,
	}
}

func personalQuestion(id, text string) model.Question {
	return model.Question{
		ID:         id,
		Type:       model.QuestionTypeFreeText,
		Category:   model.CategoryInitialAssessment,
		JobType:    model.JobTypeAll,
		Difficulty: model.DifficultyEasy,
		Rank:       model.DifficultyRank(model.DifficultyEasy),
		Text:       text,
	}
}
