package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/store"
)

// memModuleRepo is an in-memory ModuleRepo for tests.
type memModuleRepo struct {
	modules map[string]store.ModuleData
}

func newMemModuleRepo() *memModuleRepo {
	return &memModuleRepo{modules: make(map[string]store.ModuleData)}
}

func (r *memModuleRepo) Save(_ context.Context, data store.ModuleData) error {
	r.modules[data.ID] = data
	return nil
}

func (r *memModuleRepo) Get(_ context.Context, id string) (*store.ModuleData, error) {
	m, ok := r.modules[id]
	if !ok {
		return nil, fmt.Errorf("module %q not found", id)
	}
	return &m, nil
}

func (r *memModuleRepo) List(_ context.Context) ([]store.ModuleData, error) {
	out := make([]store.ModuleData, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, m)
	}
	return out, nil
}

func (r *memModuleRepo) SetObjectives(_ context.Context, id string, objectives []string) error {
	m, ok := r.modules[id]
	if !ok {
		return fmt.Errorf("module %q not found", id)
	}
	m.Objectives = objectives
	r.modules[id] = m
	return nil
}

func (r *memModuleRepo) Delete(_ context.Context, id string) error {
	delete(r.modules, id)
	return nil
}

func objectivesJSON() json.RawMessage {
	return json.RawMessage(`{
		"objectives": [
			"Describe the function of the mitochondrion",
			"Explain the stages of mitosis"
		]
	}`)
}

func TestAddModule(t *testing.T) {
	repo := newMemModuleRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Content: objectivesJSON()})
	svc := NewService(repo, mock, DefaultConfig())
	defer svc.Close()

	m, err := svc.AddModule(context.Background(), "Cell Biology", "The mitochondrion is the powerhouse of the cell.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" {
		t.Error("expected generated module ID")
	}
	if len(m.Objectives) != 2 {
		t.Fatalf("expected 2 objectives, got %d", len(m.Objectives))
	}

	stored, err := repo.Get(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("module not persisted: %v", err)
	}
	if stored.Objectives[0] != "Describe the function of the mitochondrion" {
		t.Errorf("unexpected objective: %q", stored.Objectives[0])
	}
}

func TestAddModule_EmptyInputs(t *testing.T) {
	repo := newMemModuleRepo()
	mock := llm.NewMockProvider()
	svc := NewService(repo, mock, DefaultConfig())
	defer svc.Close()

	if _, err := svc.AddModule(context.Background(), "", "material"); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := svc.AddModule(context.Background(), "Title", "   "); err == nil {
		t.Error("expected error for empty material")
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM should not be called, got %d calls", mock.CallCount())
	}
}

func TestAddModule_ObjectiveCountCapped(t *testing.T) {
	repo := newMemModuleRepo()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"objectives": ["a", "b", "c", "d", "e"]}`),
	})
	cfg := DefaultConfig()
	cfg.MaxObjectives = 3
	svc := NewService(repo, mock, cfg)
	defer svc.Close()

	m, err := svc.AddModule(context.Background(), "Title", "material")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Objectives) != 3 {
		t.Errorf("expected objectives capped at 3, got %d", len(m.Objectives))
	}
}

func TestAddModule_NoObjectives(t *testing.T) {
	repo := newMemModuleRepo()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"objectives": ["", "  "]}`),
	})
	svc := NewService(repo, mock, DefaultConfig())
	defer svc.Close()

	if _, err := svc.AddModule(context.Background(), "Title", "material"); err == nil {
		t.Fatal("expected error for empty objective list")
	}
}

func TestRegenerateObjectives(t *testing.T) {
	repo := newMemModuleRepo()
	repo.modules["m1"] = store.ModuleData{
		ID: "m1", Title: "Cell Biology", Material: "stuff",
		Objectives: []string{"old objective"},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: objectivesJSON()})
	svc := NewService(repo, mock, DefaultConfig())
	defer svc.Close()

	objectives, err := svc.RegenerateObjectives(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objectives) != 2 {
		t.Fatalf("expected 2 objectives, got %d", len(objectives))
	}
	stored, _ := repo.Get(context.Background(), "m1")
	if stored.Objectives[0] == "old objective" {
		t.Error("objectives were not replaced")
	}
}

func TestPreviewTokens(t *testing.T) {
	repo := newMemModuleRepo()
	repo.modules["m1"] = store.ModuleData{ID: "m1", Title: "Cell Biology"}
	svc := NewService(repo, llm.NewMockProvider(), DefaultConfig())
	defer svc.Close()

	token, err := svc.CreatePreview(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	m, err := svc.ResolvePreview(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != "m1" {
		t.Errorf("expected module m1, got %q", m.ID)
	}

	if _, err := svc.ResolvePreview(context.Background(), "bogus"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestPreviewTokens_UnknownModule(t *testing.T) {
	svc := NewService(newMemModuleRepo(), llm.NewMockProvider(), DefaultConfig())
	defer svc.Close()

	if _, err := svc.CreatePreview(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestPreviewTokens_Expiry(t *testing.T) {
	repo := newMemModuleRepo()
	repo.modules["m1"] = store.ModuleData{ID: "m1", Title: "Cell Biology"}
	cfg := DefaultConfig()
	cfg.PreviewTTL = 10 * time.Millisecond
	svc := NewService(repo, llm.NewMockProvider(), cfg)
	defer svc.Close()

	token, err := svc.CreatePreview(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, err := svc.ResolvePreview(context.Background(), token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestGenerateObjectives_PromptContents(t *testing.T) {
	repo := newMemModuleRepo()
	mock := llm.NewMockProvider(llm.MockResponse{Content: objectivesJSON()})
	svc := NewService(repo, mock, DefaultConfig())
	defer svc.Close()

	_, err := svc.AddModule(context.Background(), "Cell Biology", "The mitochondrion is the powerhouse of the cell.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "Cell Biology") {
		t.Error("expected title in prompt")
	}
	if !strings.Contains(userMsg, "powerhouse of the cell") {
		t.Error("expected material in prompt")
	}
}
