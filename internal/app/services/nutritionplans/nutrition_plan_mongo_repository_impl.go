package nutritionplans

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

type NutritionPlanMongoRepository struct {
	Collection *mongo.Collection
}

func NewNutritionPlanMongoRepository(db *mongo.Client, dbName string) NutritionPlanRepository {
	return &NutritionPlanMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNutritionPlans),
	}
}

func (r *NutritionPlanMongoRepository) CreateNutritionPlan(ctx context.Context, plan *models.NutritionPlan) (planID string, err error) {
	result, err := r.Collection.InsertOne(ctx, plan)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NutritionPlanMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.NutritionPlan, error) {
	return r.findSorted(ctx, bson.M{"patientId": patientID})
}

func (r *NutritionPlanMongoRepository) FindByPatientIDSince(ctx context.Context, patientID string, since time.Time) ([]models.NutritionPlan, error) {
	filter := bson.M{
		"patientId": patientID,
		"createdAt": bson.M{"$gte": since},
	}
	return r.findSorted(ctx, filter)
}

func (r *NutritionPlanMongoRepository) FindLatestByPatientID(ctx context.Context, patientID string) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}, opts).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &plan, nil
}

func (r *NutritionPlanMongoRepository) findSorted(ctx context.Context, filter bson.M) ([]models.NutritionPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	plans := make([]models.NutritionPlan, 0)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return plans, nil
}
