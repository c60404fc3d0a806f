package flashcards

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studytrail/studytrail/internal/llm"
)

// Config controls flashcard generation.
type Config struct {
	// NumCards is the default card count when GenerateInput doesn't specify
	// one.
	NumCards int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxMaterialChars caps how much course material goes into the prompt.
	MaxMaterialChars int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		NumCards:         10,
		MaxTokens:        4096,
		Temperature:      0.5,
		MaxMaterialChars: 8000,
	}
}

// Service generates flashcard decks from course material.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a flashcard service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

const deckSystemPrompt = `You are an instructor creating flashcards from course material.

Rules:
- Generate the requested number of cards, grounded strictly in the provided course material.
- Each card has a front (a term, question, or cue) and a back (a concise definition or answer). Keep both sides short; a card is not an essay.
- Tag every card with the indices of the learning objectives it reinforces, using the numbered list in the prompt.
- Cover all objectives across the deck; don't cluster every card on one objective.
- Prefer key terms, definitions, and core facts over trivia.`

type cardOutput struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Objectives []int  `json:"objectives"`
}

type deckOutput struct {
	Cards []cardOutput `json:"cards"`
}

// Generate produces a flashcard deck for the given input context.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Deck, error) {
	if len(input.Objectives) == 0 {
		return nil, fmt.Errorf("module %q has no objectives", input.ModuleID)
	}

	ctx = llm.WithPurpose(ctx, "flashcards")

	req := llm.Request{
		System: deckSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: s.buildUserMessage(input)},
		},
		Schema:      DeckSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw deckOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse deck response: %w", err)
	}
	if len(raw.Cards) == 0 {
		return nil, fmt.Errorf("LLM returned no cards")
	}

	deck := &Deck{
		ModuleID: input.ModuleID,
		Title:    input.Title,
		Cards:    make([]Card, 0, len(raw.Cards)),
	}
	for i, rc := range raw.Cards {
		if strings.TrimSpace(rc.Front) == "" || strings.TrimSpace(rc.Back) == "" {
			return nil, fmt.Errorf("card %d: empty front or back", i+1)
		}
		for _, idx := range rc.Objectives {
			if idx < 0 || idx >= len(input.Objectives) {
				return nil, fmt.Errorf("card %d: objective index %d out of range", i+1, idx)
			}
		}
		deck.Cards = append(deck.Cards, Card{
			Front:      rc.Front,
			Back:       rc.Back,
			Objectives: rc.Objectives,
		})
	}
	return deck, nil
}

func (s *Service) buildUserMessage(input GenerateInput) string {
	count := input.NumCards
	if count <= 0 {
		count = s.cfg.NumCards
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Module: %s\n", input.Title)
	fmt.Fprintf(&b, "Cards to generate: %d\n", count)

	b.WriteString("\nLearning objectives (tag cards by index):\n")
	for i, obj := range input.Objectives {
		fmt.Fprintf(&b, "[%d] %s\n", i, obj)
	}

	b.WriteString("\nCourse material:\n")
	b.WriteString(truncate(input.Material, s.cfg.MaxMaterialChars))
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n[material truncated]"
}
