package repository

import (
	"context"
	"talentgate/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CaseRepo handles MongoDB operations for evaluation cases
type CaseRepo interface {
	Create(ctx context.Context, c *model.EvaluationCase) (string, error)
	GetByID(ctx context.Context, id string) (*model.EvaluationCase, error)
	GetAll(ctx context.Context) ([]*model.EvaluationCase, error)
	Update(ctx context.Context, c *model.EvaluationCase) error
	Delete(ctx context.Context, id string) error
}

type caseRepo struct {
	collection *mongo.Collection
}

// NewCaseRepo creates a new case repository
func NewCaseRepo(db *mongo.Database) CaseRepo {
	return &caseRepo{
		collection: db.Collection("cases"),
	}
}

func (r *caseRepo) Create(ctx context.Context, c *model.EvaluationCase) (string, error) {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

func (r *caseRepo) GetByID(ctx context.Context, id string) (*model.EvaluationCase, error) {
	var c model.EvaluationCase
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepo) GetAll(ctx context.Context) ([]*model.EvaluationCase, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cases []*model.EvaluationCase
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepo) Update(ctx context.Context, c *model.EvaluationCase) error {
	c.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	return err
}

func (r *caseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
