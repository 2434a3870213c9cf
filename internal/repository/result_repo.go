package repository

import (
	"context"
	"talentgate/internal/model"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepo persists assessment results. Results are immutable once
// created; Save replaces any prior result for the same
// participant+case+template key instead of mutating it.
type ResultRepo interface {
	Save(ctx context.Context, result *model.AssessmentResult) error
	GetByKey(ctx context.Context, participantID, caseID, templateID string) (*model.AssessmentResult, error)
	GetByCase(ctx context.Context, caseID string) ([]*model.AssessmentResult, error)
	GetByParticipant(ctx context.Context, participantID string) ([]*model.AssessmentResult, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("assessment_results"),
	}
}

func (r *resultRepo) Save(ctx context.Context, result *model.AssessmentResult) error {
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	filter := bson.M{
		"participantId": result.ParticipantID,
		"caseId":        result.CaseID,
		"templateId":    result.TemplateID,
	}
	_, err := r.collection.ReplaceOne(ctx, filter, result, options.Replace().SetUpsert(true))
	return err
}

func (r *resultRepo) GetByKey(ctx context.Context, participantID, caseID, templateID string) (*model.AssessmentResult, error) {
	filter := bson.M{
		"participantId": participantID,
		"caseId":        caseID,
		"templateId":    templateID,
	}

	var result model.AssessmentResult
	err := r.collection.FindOne(ctx, filter).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) GetByCase(ctx context.Context, caseID string) ([]*model.AssessmentResult, error) {
	return r.find(ctx, bson.M{"caseId": caseID})
}

func (r *resultRepo) GetByParticipant(ctx context.Context, participantID string) ([]*model.AssessmentResult, error) {
	return r.find(ctx, bson.M{"participantId": participantID})
}

func (r *resultRepo) find(ctx context.Context, filter bson.M) ([]*model.AssessmentResult, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.AssessmentResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
