package city

import (
	"context"
	"errors"

	"go-clinic/internal/apperr"
	"go-clinic/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CityRepository interface {
	Create(ctx context.Context, city *City) error
	FindByID(ctx context.Context, id string) (*City, error)
	FindByName(ctx context.Context, nome string) (*City, error)
	List(ctx context.Context) ([]City, error)
	Update(ctx context.Context, id string, patch bson.M) error
	Delete(ctx context.Context, id string) error

	GetScheduleConfig(ctx context.Context, cityID string) (*ScheduleConfig, error)
	PutScheduleConfig(ctx context.Context, cfg *ScheduleConfig) error
}

type CityRepositoryImpl struct {
	Collection *mongo.Collection
	Configs    *mongo.Collection
}

func NewCityRepository(mongodb *database.MongodbDB) CityRepository {
	return &CityRepositoryImpl{
		Collection: mongodb.DB.Collection("cidades"),
		Configs:    mongodb.DB.Collection("scheduleConfigs"),
	}
}

func (r *CityRepositoryImpl) Create(ctx context.Context, city *City) error {
	_, err := r.Collection.InsertOne(ctx, city)
	return err
}

func (r *CityRepositoryImpl) FindByID(ctx context.Context, id string) (*City, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var city City
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&city)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepositoryImpl) FindByName(ctx context.Context, nome string) (*City, error) {
	var city City
	err := r.Collection.FindOne(ctx, bson.M{"nome": nome}).Decode(&city)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepositoryImpl) List(ctx context.Context) ([]City, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cities []City
	if err = cursor.All(ctx, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CityRepositoryImpl) Update(ctx context.Context, id string, patch bson.M) error {
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

func (r *CityRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	if _, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		return err
	}
	// Schedule config rides along with the city
	_, err = r.Configs.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *CityRepositoryImpl) GetScheduleConfig(ctx context.Context, cityID string) (*ScheduleConfig, error) {
	var cfg ScheduleConfig
	err := r.Configs.FindOne(ctx, bson.M{"_id": cityID}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *CityRepositoryImpl) PutScheduleConfig(ctx context.Context, cfg *ScheduleConfig) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Configs.ReplaceOne(ctx, bson.M{"_id": cfg.CityID}, cfg, opts)
	return err
}
