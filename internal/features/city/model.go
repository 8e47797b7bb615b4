package city

import (
	"time"

	"go-clinic/internal/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// City is a service location stored in the "cidades" collection.
type City struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nome      string             `json:"nome" bson:"nome"`
	Ativo     bool               `json:"ativo" bson:"ativo"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ScheduleConfig is the per-city slot configuration, stored in the
// "scheduleConfigs" collection keyed by city id.
type ScheduleConfig struct {
	CityID    string          `json:"city_id" bson:"_id"`
	Config    schedule.Config `json:"config" bson:",inline"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}
