package store

import (
	"context"
	"fmt"

	"github.com/studytrail/studytrail/ent"
	"github.com/studytrail/studytrail/ent/coursemodule"
)

type moduleRepo struct {
	client *ent.Client
}

func (r *moduleRepo) Save(ctx context.Context, data ModuleData) error {
	_, err := r.client.CourseModule.Create().
		SetModuleID(data.ID).
		SetTitle(data.Title).
		SetMaterial(data.Material).
		SetObjectives(data.Objectives).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save module: %w", err)
	}
	return nil
}

func (r *moduleRepo) Get(ctx context.Context, id string) (*ModuleData, error) {
	m, err := r.client.CourseModule.Query().
		Where(coursemodule.ModuleID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("module %q not found", id)
		}
		return nil, fmt.Errorf("query module: %w", err)
	}
	return toModuleData(m), nil
}

func (r *moduleRepo) List(ctx context.Context) ([]ModuleData, error) {
	ms, err := r.client.CourseModule.Query().
		Order(ent.Asc(coursemodule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	out := make([]ModuleData, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toModuleData(m))
	}
	return out, nil
}

func (r *moduleRepo) SetObjectives(ctx context.Context, id string, objectives []string) error {
	n, err := r.client.CourseModule.Update().
		Where(coursemodule.ModuleID(id)).
		SetObjectives(objectives).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update objectives: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("module %q not found", id)
	}
	return nil
}

func (r *moduleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.CourseModule.Delete().
		Where(coursemodule.ModuleID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete module: %w", err)
	}
	return nil
}

func toModuleData(m *ent.CourseModule) *ModuleData {
	return &ModuleData{
		ID:         m.ModuleID,
		Title:      m.Title,
		Material:   m.Material,
		Objectives: m.Objectives,
		CreatedAt:  m.CreatedAt,
	}
}
