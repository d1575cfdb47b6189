package dnd35

// Feat is a named ability granted to a character
type Feat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
