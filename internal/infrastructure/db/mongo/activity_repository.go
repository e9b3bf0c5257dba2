package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhive/todo-api/internal/core/domain"
)

const activityCollection = "task_activity"

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	TaskID    string    `bson:"task_id"`
	Action    string    `bson:"action"`
	TaskTitle string    `bson:"task_title"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		ID:        activity.ID,
		UserID:    activity.UserID,
		TaskID:    activity.TaskID,
		Action:    string(activity.Action),
		TaskTitle: activity.TaskTitle,
		CreatedAt: activity.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByOwner(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]*domain.Activity, 0, limit)
	for cursor.Next(ctx) {
		var ma mongoActivity
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		items = append(items, &domain.Activity{
			ID:        ma.ID,
			UserID:    ma.UserID,
			TaskID:    ma.TaskID,
			Action:    domain.ActivityAction(ma.Action),
			TaskTitle: ma.TaskTitle,
			CreatedAt: ma.CreatedAt.UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return items, nil
}

// EnsureIndexes creates the feed lookup index.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
