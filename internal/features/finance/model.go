package finance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TipoReceita = "receita"
	TipoDespesa = "despesa"
)

// Record is a financial entry stored in the "registros_financeiros"
// collection. Valor is kept in centavos to avoid float drift.
type Record struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Descricao string             `json:"descricao" bson:"descricao"`
	Tipo      string             `json:"tipo" bson:"tipo"`
	Valor     int64              `json:"valor" bson:"valor"` // centavos
	Data      string             `json:"data" bson:"data"`   // DD/MM/YYYY
	Cidade    string             `json:"cidade" bson:"cidade"`
	Categoria string             `json:"categoria" bson:"categoria"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Summary aggregates records per tipo for a listing window.
type Summary struct {
	TotalReceitas int64 `json:"total_receitas"`
	TotalDespesas int64 `json:"total_despesas"`
	Saldo         int64 `json:"saldo"`
}

// ListFilter narrows record listings and exports.
type ListFilter struct {
	Cidade string
	Tipo   string
}
