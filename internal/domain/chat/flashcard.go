package chat

// Flashcard is derived from model output at request time and never persisted.
type Flashcard struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// Flashcard categories form a closed set; anything else marks a segment as
// malformed during parsing.
const (
	CategorySymptoms   = "symptoms"
	CategoryPrevention = "prevention"
	CategoryTreatment  = "treatment"
	CategoryLifestyle  = "lifestyle"
	CategoryGeneral    = "general"
)

func ValidFlashcardCategory(category string) bool {
	switch category {
	case CategorySymptoms, CategoryPrevention, CategoryTreatment, CategoryLifestyle, CategoryGeneral:
		return true
	default:
		return false
	}
}
