package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func reviewTestSchema() *Schema {
	return &Schema{
		Name:        "validate-test",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 2},
				"status":   map[string]any{"type": "string", "enum": []any{"developing", "approaching", "mastered"}},
				"feedback": map[string]any{"type": "string"},
			},
			"required": []any{"score", "status"},
		},
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass, got: %v", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"score":2,"status":"mastered","feedback":"solid"}`)
	if err := validateResponse(reviewTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score":1}`)
	err := validateResponse(reviewTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"score":7,"status":"mastered"}`)
	if err := validateResponse(reviewTestSchema(), raw); err == nil {
		t.Fatal("expected error for score above maximum")
	}
}

func TestValidateResponse_BadEnum(t *testing.T) {
	raw := json.RawMessage(`{"score":1,"status":"excellent"}`)
	if err := validateResponse(reviewTestSchema(), raw); err == nil {
		t.Fatal("expected error for unknown enum value")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(reviewTestSchema(), json.RawMessage(`{"score":`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want ErrInvalidResponse", err)
	}
}
