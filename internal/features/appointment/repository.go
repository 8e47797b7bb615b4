package appointment

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

type AppointmentRepository interface {
	Create(ctx context.Context, appt *Appointment) error
	FindByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter bson.M) ([]Appointment, error)
	Update(ctx context.Context, id string, patch bson.M) error
	Delete(ctx context.Context, id string) error
	CountActiveAt(ctx context.Context, cidade, data, horario string) (int64, error)
	FindBookedTimes(ctx context.Context, cidade, data string) ([]string, error)
	EnsureIndexes(ctx context.Context) error
}

type AppointmentRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAppointmentRepository(mongodb *database.MongodbDB) AppointmentRepository {
	return &AppointmentRepositoryImpl{
		Collection: mongodb.DB.Collection("agendamentos"),
	}
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, appt *Appointment) error {
	_, err := r.Collection.InsertOne(ctx, appt)
	return err
}

func (r *AppointmentRepositoryImpl) FindByID(ctx context.Context, id string) (*Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var appt Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepositoryImpl) List(ctx context.Context, filter bson.M) ([]Appointment, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "data", Value: 1}, {Key: "horario", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []Appointment
	if err = cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *AppointmentRepositoryImpl) Update(ctx context.Context, id string, patch bson.M) error {
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

func (r *AppointmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

// CountActiveAt counts pendente/confirmado appointments at the exact slot.
func (r *AppointmentRepositoryImpl) CountActiveAt(ctx context.Context, cidade, data, horario string) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{
		"cidade":  cidade,
		"data":    data,
		"horario": horario,
		"status":  bson.M{"$in": activeStatuses},
	})
}

// FindBookedTimes returns the horario values occupied on a city+date.
// Cancelled appointments do not block a slot.
func (r *AppointmentRepositoryImpl) FindBookedTimes(ctx context.Context, cidade, data string) ([]string, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{
		"cidade": cidade,
		"data":   data,
		"status": bson.M{"$in": activeStatuses},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []Appointment
	if err = cursor.All(ctx, &appts); err != nil {
		return nil, err
	}

	times := make([]string, 0, len(appts))
	for _, a := range appts {
		times = append(times, a.Horario)
	}
	return times, nil
}

// EnsureIndexes creates the partial unique index that makes the
// double-booking guard race-free: uniqueness on (cidade, data, horario)
// restricted to slot-occupying statuses, so cancelled records never
// conflict.
func (r *AppointmentRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "cidade", Value: 1},
			{Key: "data", Value: 1},
			{Key: "horario", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": activeStatuses},
			}),
	})
	return err
}
