package doctor

import (
	"context"
	"errors"

	"go-clinic/internal/apperr"
	"go-clinic/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *Doctor) error
	FindByID(ctx context.Context, id string) (*Doctor, error)
	List(ctx context.Context, filter bson.M) ([]Doctor, error)
	Update(ctx context.Context, id string, patch bson.M) error
	Delete(ctx context.Context, id string) error
}

type DoctorRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDoctorRepository(mongodb *database.MongodbDB) DoctorRepository {
	return &DoctorRepositoryImpl{
		Collection: mongodb.DB.Collection("medicos"),
	}
}

func (r *DoctorRepositoryImpl) Create(ctx context.Context, doctor *Doctor) error {
	_, err := r.Collection.InsertOne(ctx, doctor)
	return err
}

func (r *DoctorRepositoryImpl) FindByID(ctx context.Context, id string) (*Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var doctor Doctor
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Doctor, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []Doctor
	if err = cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorRepositoryImpl) Update(ctx context.Context, id string, patch bson.M) error {
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

func (r *DoctorRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
