package models

import "time"

// Movement kinds as stored on the wire.
const (
	MovementIncome  = "ingreso"
	MovementExpense = "gasto"
)

// Movement is a single income or expense transaction.
type Movement struct {
	ID        string    `json:"idMovimiento"`
	UserID    string    `json:"idUsuario"`
	Kind      string    `json:"tipoMovimiento"`
	Category  string    `json:"categoriaMovimiento"`
	Amount    float64   `json:"monto"`
	Date      string    `json:"fecha"` // calendar date, YYYY-MM-DD
	Notes     string    `json:"descripcion"`
	CreatedAt time.Time `json:"fechaCreacion"`
}
