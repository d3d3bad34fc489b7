package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/samueldharshi/reflectra/domain/entities"
	"github.com/samueldharshi/reflectra/domain/repositories"
)

type ReflectionRepository struct {
	collection *mongo.Collection
}

// NewReflectionRepository creates a new MongoDB reflection repository
func NewReflectionRepository(db *mongo.Database) repositories.ReflectionRepository {
	return &ReflectionRepository{
		collection: db.Collection("reflections"),
	}
}

// Create implements repositories.ReflectionRepository
func (r *ReflectionRepository) Create(ctx context.Context, reflection *entities.Reflection) error {
	if reflection == nil {
		return errors.New("reflection cannot be nil")
	}

	doc := bson.M{
		"_id":               reflection.ID,
		"user_id":           reflection.UserID,
		"core_values":       reflection.CoreValues,
		"life_goals":        reflection.LifeGoals,
		"current_struggles": reflection.CurrentStruggles,
		"ideal_self":        reflection.IdealSelf,
		"decision_focus":    reflection.DecisionFocus,
		"created_at":        reflection.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create reflection: %w", err)
	}

	return nil
}

// GetRecentByUserID implements repositories.ReflectionRepository
func (r *ReflectionRepository) GetRecentByUserID(ctx context.Context, userID string, limit int) ([]*entities.Reflection, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	filter := bson.M{"user_id": userID}
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reflections for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var reflections []*entities.Reflection
	if err := cursor.All(ctx, &reflections); err != nil {
		return nil, fmt.Errorf("failed to decode reflections: %w", err)
	}

	return reflections, nil
}
