package chatbot

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatMongoRepository struct {
	Collection *mongo.Collection
}

func NewChatMongoRepository(db *mongo.Client, dbName string) ChatRepository {
	return &ChatMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChatTurns),
	}
}

func (r *ChatMongoRepository) CreateTurnPair(ctx context.Context, userTurn, assistantTurn *models.ChatTurn) error {
	opts := options.InsertMany().SetOrdered(true)
	_, err := r.Collection.InsertMany(ctx, []interface{}{userTurn, assistantTurn}, opts)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ChatMongoRepository) FindByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ChatTurn, error) {
	filter := bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	turns := make([]models.ChatTurn, 0)
	if err := cursor.All(ctx, &turns); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return turns, nil
}

// FindRecentByUserID returns up to limit turns, newest first.
func (r *ChatMongoRepository) FindRecentByUserID(ctx context.Context, userID string, limit int64) ([]models.ChatTurn, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	turns := make([]models.ChatTurn, 0)
	if err := cursor.All(ctx, &turns); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return turns, nil
}

func (r *ChatMongoRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
