package nlp

import (
	"context"
	"errors"
	"math"
)

// Label categorizes a recognized entity span.
type Label string

const (
	LabelPerson   Label = "PERSON"
	LabelOrg      Label = "ORG"
	LabelProduct  Label = "PRODUCT"
	LabelLanguage Label = "LANGUAGE"
)

// Entity is a tagged span of text returned by a recognizer.
type Entity struct {
	Text  string
	Label Label
}

// Recognizer abstracts named-entity recognition backends.
type Recognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// Embedder abstracts text-embedding backends. Embeddings must be
// deterministic for a fixed model version so matching stays reproducible.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ErrUnavailable signals that a backend is not configured or cannot be
// reached. Callers degrade to their non-NLP paths instead of failing.
var ErrUnavailable = errors.New("nlp backend unavailable")

// Cosine returns the cosine similarity of two vectors in [-1,1].
// Mismatched or zero-length vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// UnavailableRecognizer is the stand-in used when no NER backend is configured.
type UnavailableRecognizer struct{}

// Entities always reports the backend as unavailable.
func (UnavailableRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	_ = ctx
	_ = text
	return nil, ErrUnavailable
}

// UnavailableEmbedder is the stand-in used when no embedding backend is configured.
type UnavailableEmbedder struct{}

// Embed always reports the backend as unavailable.
func (UnavailableEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	_ = ctx
	_ = text
	return nil, ErrUnavailable
}
