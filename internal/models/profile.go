package models

import "time"

// FinancialProfile describes a user's saving posture. At most one profile
// exists per user id; writes are upserts.
type FinancialProfile struct {
	ID            string    `json:"idPerfil"`
	UserID        string    `json:"idUsuario"`
	MonthlyIncome float64   `json:"ingresoMensual"`
	SavingsLevel  float64   `json:"nivelAhorro"`
	Objective     string    `json:"objetivoFinanciero"`
	UpdatedAt     time.Time `json:"fechaActualizacion"`
}
