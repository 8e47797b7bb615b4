package doctor

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is stored in the "medicos" collection. Cidades lists the city names
// the doctor attends.
type Doctor struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nome          string             `json:"nome" bson:"nome"`
	CRM           string             `json:"crm" bson:"crm"`
	Especialidade string             `json:"especialidade" bson:"especialidade"`
	Cidades       []string           `json:"cidades" bson:"cidades"`
	Ativo         bool               `json:"ativo" bson:"ativo"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
