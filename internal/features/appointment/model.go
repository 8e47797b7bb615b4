package appointment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status values are the serialization boundary with the document store.
const (
	StatusPendente   = "pendente"
	StatusConfirmado = "confirmado"
	StatusCancelado  = "cancelado"
)

// Appointment is a patient booking stored in the "agendamentos" collection.
// At most one pendente/confirmado appointment may exist per
// (cidade, data, horario); a partial unique index backs that invariant.
type Appointment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nome            string             `json:"nome" bson:"nome"`
	Telefone        string             `json:"telefone" bson:"telefone"`
	Cidade          string             `json:"cidade" bson:"cidade"`
	Data            string             `json:"data" bson:"data"`       // DD/MM/YYYY
	Horario         string             `json:"horario" bson:"horario"` // HH:MM
	Status          string             `json:"status" bson:"status"`
	Medico          string             `json:"medico,omitempty" bson:"medico,omitempty"`
	Observacoes     string             `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	NotificacaoErro string             `json:"notificacao_erro,omitempty" bson:"notificacao_erro,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// ListFilter narrows appointment listings.
type ListFilter struct {
	Cidade     string
	Data       string
	Status     string
	OnlyActive bool // exclude cancelled
}

// activeStatuses are the statuses that occupy a slot.
var activeStatuses = []string{StatusPendente, StatusConfirmado}
