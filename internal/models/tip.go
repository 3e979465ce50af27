package models

// Tip is an entry of the static financial-advice catalog. Tips are never
// persisted or mutated at runtime.
type Tip struct {
	ID         int    `json:"id"`
	Title      string `json:"titulo"`
	Content    string `json:"contenido"`
	Category   string `json:"categoria"`
	Difficulty string `json:"dificultad"`
}
