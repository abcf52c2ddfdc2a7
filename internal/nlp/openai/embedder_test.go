package openai

import "testing"

func TestNewEmbedderValidation(t *testing.T) {
	if _, err := NewEmbedder("", "text-embedding-3-small"); err == nil {
		t.Fatalf("expected error for missing api key")
	}

	embedder, err := NewEmbedder("sk-test", "")
	if err != nil {
		t.Fatalf("NewEmbedder: %v", err)
	}
	if embedder.model != defaultModel {
		t.Fatalf("expected default model %q, got %q", defaultModel, embedder.model)
	}
}
