// Package tips provides the static financial-advice catalog and the
// deterministic daily-tip selector. It has no storage dependency.
package tips

import (
	"time"

	"github.com/dcastano/finanzapp/internal/models"
)

// CategoryAll bypasses the category filter in All.
const CategoryAll = "todos"

// catalog is the tip database carried over from the original application.
// It is never mutated at runtime.
var catalog = []models.Tip{
	{
		ID:         1,
		Title:      "Regla del 50/30/20",
		Content:    "Distribuye tu ingreso: 50% necesidades básicas, 30% deseos personales, 20% ahorro e inversión.",
		Category:   "presupuesto",
		Difficulty: "basico",
	},
	{
		ID:         2,
		Title:      "Fondo de Emergencia",
		Content:    "Ahorra al menos 3-6 meses de gastos como fondo de emergencia antes de invertir.",
		Category:   "ahorro",
		Difficulty: "basico",
	},
	{
		ID:         3,
		Title:      "Interés Compuesto",
		Content:    "El interés compuesto es tu mejor aliado. Comienza a invertir lo antes posible, aunque sea poco.",
		Category:   "inversion",
		Difficulty: "intermedio",
	},
	{
		ID:         4,
		Title:      "Paga Primero tus Deudas",
		Content:    "Prioriza pagar deudas con tasas de interés altas antes de ahorrar para otros objetivos.",
		Category:   "deudas",
		Difficulty: "basico",
	},
	{
		ID:         5,
		Title:      "Automatiza tu Ahorro",
		Content:    "Configura transferencias automáticas a tu cuenta de ahorros justo después de recibir tu salario.",
		Category:   "ahorro",
		Difficulty: "basico",
	},
	{
		ID:         6,
		Title:      "Diversifica tus Inversiones",
		Content:    "No pongas todos los huevos en la misma canasta. Diversifica para reducir riesgos.",
		Category:   "inversion",
		Difficulty: "intermedio",
	},
	{
		ID:         7,
		Title:      "Revisa tus Suscripciones",
		Content:    "Cancela suscripciones que no uses. Pueden sumar cientos de miles al año.",
		Category:   "presupuesto",
		Difficulty: "basico",
	},
	{
		ID:         8,
		Title:      "Educación Financiera",
		Content:    "Lee al menos un libro sobre finanzas personales al año. El conocimiento es poder.",
		Category:   "basico",
		Difficulty: "basico",
	},
}

// TipOfDay picks the tip for the given calendar date: the ordinal day of
// the year (January 1 = 1) modulo the catalog size. The selection is pure;
// the same date always yields the same tip, and the cycle repeats every
// len(catalog) days.
func TipOfDay(date time.Time) models.Tip {
	return catalog[date.YearDay()%len(catalog)]
}

// All returns the catalog, or the subset whose category matches exactly.
// An empty filter or CategoryAll returns everything.
func All(category string) []models.Tip {
	if category == "" || category == CategoryAll {
		result := make([]models.Tip, len(catalog))
		copy(result, catalog)
		return result
	}

	result := make([]models.Tip, 0, len(catalog))
	for _, tip := range catalog {
		if tip.Category == category {
			result = append(result, tip)
		}
	}
	return result
}
