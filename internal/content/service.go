package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studytrail/studytrail/internal/cache"
	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/store"
)

// Config controls the content service.
type Config struct {
	// MaxObjectives caps the learning objective list per module.
	MaxObjectives int

	// MaxTokens is the token budget for objective generation.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxMaterialChars caps how much course material goes into the prompt.
	MaxMaterialChars int

	// PreviewTTL is how long a preview token stays valid.
	PreviewTTL time.Duration
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxObjectives:    8,
		MaxTokens:        1024,
		Temperature:      0.4,
		MaxMaterialChars: 12000,
		PreviewTTL:       15 * time.Minute,
	}
}

// Service manages course modules: storing material, generating learning
// objectives, and issuing short-lived preview tokens.
type Service struct {
	modules  store.ModuleRepo
	provider llm.Provider
	cfg      Config
	previews *cache.Cache[string]
}

// NewService creates a content service. Call Close when done to release the
// preview cache.
func NewService(modules store.ModuleRepo, provider llm.Provider, cfg Config) *Service {
	return &Service{
		modules:  modules,
		provider: provider,
		cfg:      cfg,
		previews: cache.New[string](cfg.PreviewTTL),
	}
}

// Close releases background resources.
func (s *Service) Close() {
	s.previews.Close()
}

// AddModule stores a new course module and generates its learning
// objectives from the material.
func (s *Service) AddModule(ctx context.Context, title, material string) (*store.ModuleData, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("module title is empty")
	}
	if strings.TrimSpace(material) == "" {
		return nil, fmt.Errorf("module material is empty")
	}

	objectives, err := s.generateObjectives(ctx, title, material)
	if err != nil {
		return nil, fmt.Errorf("generate objectives: %w", err)
	}

	data := store.ModuleData{
		ID:         uuid.NewString(),
		Title:      title,
		Material:   material,
		Objectives: objectives,
	}
	if err := s.modules.Save(ctx, data); err != nil {
		return nil, err
	}
	return &data, nil
}

// RegenerateObjectives replaces a module's objective list with a fresh LLM
// generation. Existing attempt history keeps its objective indices, so this
// is only safe before practice begins; callers enforce that.
func (s *Service) RegenerateObjectives(ctx context.Context, moduleID string) ([]string, error) {
	m, err := s.modules.Get(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	objectives, err := s.generateObjectives(ctx, m.Title, m.Material)
	if err != nil {
		return nil, fmt.Errorf("generate objectives: %w", err)
	}

	if err := s.modules.SetObjectives(ctx, moduleID, objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

// Module returns one stored module.
func (s *Service) Module(ctx context.Context, moduleID string) (*store.ModuleData, error) {
	return s.modules.Get(ctx, moduleID)
}

// Modules returns all stored modules in creation order.
func (s *Service) Modules(ctx context.Context) ([]store.ModuleData, error) {
	return s.modules.List(ctx)
}

// CreatePreview issues a short-lived token granting read access to one
// module without identifying a student. The token expires after the
// configured TTL.
func (s *Service) CreatePreview(ctx context.Context, moduleID string) (string, error) {
	if _, err := s.modules.Get(ctx, moduleID); err != nil {
		return "", err
	}
	token := uuid.NewString()
	s.previews.Set(token, moduleID)
	return token, nil
}

// ResolvePreview exchanges a preview token for its module. Returns an error
// if the token is unknown or expired.
func (s *Service) ResolvePreview(ctx context.Context, token string) (*store.ModuleData, error) {
	moduleID, ok := s.previews.Get(token)
	if !ok {
		return nil, fmt.Errorf("preview token is invalid or expired")
	}
	return s.modules.Get(ctx, moduleID)
}
