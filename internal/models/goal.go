package models

import "time"

// Goal statuses as stored on the wire.
const (
	GoalInProgress = "en-progreso"
	GoalCompleted  = "completada"
)

// Goal is a savings target with accumulated progress. The status flips to
// GoalCompleted whenever Saved reaches Target on any mutation path; it
// never flips back automatically, even if Saved is later edited below
// Target.
type Goal struct {
	ID        string    `json:"idMeta"`
	UserID    string    `json:"idUsuario"`
	Name      string    `json:"nombreMeta"`
	Target    float64   `json:"montoObjetivo"`
	Saved     float64   `json:"ahorroActual"`
	StartDate string    `json:"fechaInicio"` // YYYY-MM-DD
	Deadline  string    `json:"fechaLimite"` // YYYY-MM-DD
	Notes     string    `json:"descripcion"`
	Icon      string    `json:"icono"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

// ApplyCompletionRule flips the goal to completed once the saved amount
// reaches the target. The transition is one-way.
func (g *Goal) ApplyCompletionRule() {
	if g.Saved >= g.Target {
		g.Status = GoalCompleted
	}
}
