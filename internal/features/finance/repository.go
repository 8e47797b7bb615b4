package finance

import (
	"context"
	"errors"

	"go-clinic/internal/apperr"
	"go-clinic/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FinanceRepository interface {
	Create(ctx context.Context, record *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, filter bson.M) ([]Record, error)
	Update(ctx context.Context, id string, patch bson.M) error
	Delete(ctx context.Context, id string) error
}

type FinanceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewFinanceRepository(mongodb *database.MongodbDB) FinanceRepository {
	return &FinanceRepositoryImpl{
		Collection: mongodb.DB.Collection("registros_financeiros"),
	}
}

func (r *FinanceRepositoryImpl) Create(ctx context.Context, record *Record) error {
	_, err := r.Collection.InsertOne(ctx, record)
	return err
}

func (r *FinanceRepositoryImpl) FindByID(ctx context.Context, id string) (*Record, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var record Record
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FinanceRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Record, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []Record
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FinanceRepositoryImpl) Update(ctx context.Context, id string, patch bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *FinanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
