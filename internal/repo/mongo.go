package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store interfaces consumed by the aggregator and the snapshot manager.
// The Mongo implementations below are the production ones; tests use
// in-memory fakes.

// UserRepository reads user profiles. Profiles are owned by the community
// user-management service; this engine never writes them.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]model.UserProfile, error)
	GetUser(ctx context.Context, uid string) (*model.UserProfile, error)
}

// StatsRepository stores one UserStats document per user.
type StatsRepository interface {
	GetUserStats(ctx context.Context, uid string) (*model.UserStats, error)
	SaveUserStats(ctx context.Context, stats *model.UserStats) error
}

// LeaderboardRepository stores one snapshot document per month key.
type LeaderboardRepository interface {
	GetSnapshot(ctx context.Context, key model.MonthKey) (*model.MonthlyLeaderboard, error)
	SaveSnapshot(ctx context.Context, lb *model.MonthlyLeaderboard) error
	ListMonthKeys(ctx context.Context) ([]model.MonthKey, error)
}

type MongoRepository struct {
	users        *mongo.Collection
	userStats    *mongo.Collection
	leaderboards *mongo.Collection
}

func NewMongoRepository(client *mongo.Client, dbName string) *MongoRepository {
	db := client.Database(dbName)
	return &MongoRepository{
		users:        db.Collection("users"),
		userStats:    db.Collection("userStats"),
		leaderboards: db.Collection("monthlyLeaderboards"),
	}
}

// ListUsers returns every registered user profile.
func (r *MongoRepository) ListUsers(ctx context.Context) ([]model.UserProfile, error) {
	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var results []model.UserProfile
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return results, nil
}

// GetUser returns a single profile, or nil when the user does not exist.
func (r *MongoRepository) GetUser(ctx context.Context, uid string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.users.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", uid, err)
	}
	return &user, nil
}

// GetUserStats returns the stats document for a user, or nil when the
// user has never been aggregated.
func (r *MongoRepository) GetUserStats(ctx context.Context, uid string) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.userStats.FindOne(ctx, bson.M{"_id": uid}).Decode(&stats)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for %s: %w", uid, err)
	}
	return &stats, nil
}

// SaveUserStats overwrites the stats document for a user, creating it on
// first aggregation.
func (r *MongoRepository) SaveUserStats(ctx context.Context, stats *model.UserStats) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.userStats.ReplaceOne(ctx, bson.M{"_id": stats.UID}, stats, opts); err != nil {
		return fmt.Errorf("failed to save stats for %s: %w", stats.UID, err)
	}
	return nil
}

// GetSnapshot returns the snapshot for a month key, or nil when no
// snapshot exists for that month.
func (r *MongoRepository) GetSnapshot(ctx context.Context, key model.MonthKey) (*model.MonthlyLeaderboard, error) {
	var lb model.MonthlyLeaderboard
	err := r.leaderboards.FindOne(ctx, bson.M{"_id": key.DocumentID()}).Decode(&lb)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key.DocumentID(), err)
	}
	return &lb, nil
}

// SaveSnapshot overwrites the snapshot document for its month key.
func (r *MongoRepository) SaveSnapshot(ctx context.Context, lb *model.MonthlyLeaderboard) error {
	lb.ID = lb.Key().DocumentID()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.leaderboards.ReplaceOne(ctx, bson.M{"_id": lb.ID}, lb, opts); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", lb.ID, err)
	}
	return nil
}

// ListMonthKeys enumerates the ids of all stored snapshots. Ids that do
// not parse as month keys are skipped.
func (r *MongoRepository) ListMonthKeys(ctx context.Context) ([]model.MonthKey, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.leaderboards.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot ids: %w", err)
	}

	keys := make([]model.MonthKey, 0, len(docs))
	for _, doc := range docs {
		key, err := model.ParseMonthKey(doc.ID)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}
