package records

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HealthRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthRecordMongoRepository(db *mongo.Client, dbName string) HealthRecordRepository {
	return &HealthRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthRecords),
	}
}

func (r *HealthRecordMongoRepository) CreateHealthRecord(ctx context.Context, record *models.HealthRecord) (recordID string, err error) {
	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HealthRecordMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.HealthRecord, error) {
	return r.findSorted(ctx, bson.M{"patientId": patientID})
}

func (r *HealthRecordMongoRepository) FindByPatientIDSince(ctx context.Context, patientID string, since time.Time) ([]models.HealthRecord, error) {
	filter := bson.M{
		"patientId": patientID,
		"createdAt": bson.M{"$gte": since},
	}
	return r.findSorted(ctx, filter)
}

func (r *HealthRecordMongoRepository) FindLatestByPatientID(ctx context.Context, patientID string) (*models.HealthRecord, error) {
	var record models.HealthRecord
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *HealthRecordMongoRepository) findSorted(ctx context.Context, filter bson.M) ([]models.HealthRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.HealthRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
