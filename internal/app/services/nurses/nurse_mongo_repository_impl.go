package nurses

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NurseMongoRepository struct {
	Collection *mongo.Collection
}

func NewNurseMongoRepository(db *mongo.Client, dbName string) NurseRepository {
	return &NurseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNurses),
	}
}

func (r *NurseMongoRepository) CreateNurse(ctx context.Context, nurse *models.Nurse) (nurseID string, err error) {
	result, err := r.Collection.InsertOne(ctx, nurse)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NurseMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&nurse)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &nurse, nil
}
