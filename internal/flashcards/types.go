package flashcards

// Card is one flashcard: a prompt side and an answer side.
type Card struct {
	Front string
	Back  string

	// Objectives lists the indices of the learning objectives this card
	// reinforces.
	Objectives []int
}

// Deck is a generated flashcard deck for one course module.
type Deck struct {
	ModuleID string
	Title    string
	Cards    []Card
}

// GenerateInput holds all context needed to generate a deck.
type GenerateInput struct {
	// ModuleID identifies the course module the deck is generated for.
	ModuleID string

	// Title is the module title, shown in the prompt for context.
	Title string

	// Material is the extracted course material text.
	Material string

	// Objectives is the module's ordered learning objective list. Cards tag
	// objectives by index into this slice.
	Objectives []string

	// NumCards is how many cards to generate. Zero means use the config
	// default.
	NumCards int
}
