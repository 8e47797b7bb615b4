package availabledate

import (
	"context"
	"errors"
	"time"

	"go-clinic/internal/apperr"
	"go-clinic/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DateRepository interface {
	Create(ctx context.Context, date *AvailableDate) error
	FindByID(ctx context.Context, id string) (*AvailableDate, error)
	List(ctx context.Context, filter bson.M) ([]AvailableDate, error)
	Update(ctx context.Context, id string, patch bson.M) error
	Delete(ctx context.Context, id string) error
	BulkSetStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error)
}

type DateRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDateRepository(mongodb *database.MongodbDB) DateRepository {
	return &DateRepositoryImpl{
		Collection: mongodb.DB.Collection("datas_disponiveis"),
	}
}

func (r *DateRepositoryImpl) Create(ctx context.Context, date *AvailableDate) error {
	_, err := r.Collection.InsertOne(ctx, date)
	return err
}

func (r *DateRepositoryImpl) FindByID(ctx context.Context, id string) (*AvailableDate, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var date AvailableDate
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&date)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func (r *DateRepositoryImpl) List(ctx context.Context, filter bson.M) ([]AvailableDate, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dates []AvailableDate
	if err = cursor.All(ctx, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *DateRepositoryImpl) Update(ctx context.Context, id string, patch bson.M) error {
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

func (r *DateRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

// BulkSetStatus applies one batched status rewrite. A single ordered
// BulkWrite keeps the sweep down to one store round-trip; on partial failure
// the untouched records are picked up by the next sweep or the lazy read
// path.
func (r *DateRepositoryImpl) BulkSetStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(ids))
	now := time.Now()
	for _, id := range ids {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"status": status, "updated_at": now}}))
	}

	res, err := r.Collection.BulkWrite(ctx, models)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
