package availabledate

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status values are the serialization boundary with the document store.
const (
	StatusDisponivel   = "Disponível"
	StatusIndisponivel = "Indisponível"
)

// AvailableDate is one bookable day for one city, stored in the
// "datas_disponiveis" collection. A date on or before today must be
// Indisponível; the daily sweep and the lazy read path both enforce it.
type AvailableDate struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Cidade    string             `json:"cidade" bson:"cidade"`
	Data      string             `json:"data" bson:"data"` // DD/MM/YYYY
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
