package models

// DashboardStats are the derived dashboard aggregates for one user.
type DashboardStats struct {
	Income        float64 `json:"ingresos"`
	Expenses      float64 `json:"gastos"`
	Balance       float64 `json:"balance"`
	TotalSaved    float64 `json:"ahorros"`
	MovementCount int     `json:"totalMovimientos"`
	GoalCount     int     `json:"totalMetas"`
}
