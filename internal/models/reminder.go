package models

import "time"

// Reminder statuses as stored on the wire.
const (
	ReminderPending   = "pendiente"
	ReminderCompleted = "completado"
)

// DefaultReminderCategory is used when the caller supplies none.
const DefaultReminderCategory = "otro"

// Reminder is a user-scheduled financial to-do. The pending -> completed
// transition is one-way and user-triggered.
type Reminder struct {
	ID        string    `json:"idRecordatorio"`
	UserID    string    `json:"idUsuario"`
	Title     string    `json:"titulo"`
	Notes     string    `json:"descripcion"`
	Date      string    `json:"fechaRecordatorio"` // YYYY-MM-DD
	Time      string    `json:"horaRecordatorio"`  // HH:MM, optional
	Amount    float64   `json:"monto"`
	Category  string    `json:"tipo"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"fechaCreacion"`
}
