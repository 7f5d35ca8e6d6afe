package characters

// Character is one entry in the character picker
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
