package hybridtfidf

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func mustFit(t *testing.T, docs [][]string) *Model {
	t.Helper()
	m := NewModel()
	if err := m.Fit(docs); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	return m
}

func TestFitEmptyCorpus(t *testing.T) {
	m := NewModel()
	if err := m.Fit(nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestFitTwice(t *testing.T) {
	m := mustFit(t, [][]string{{"a", "b"}})
	if err := m.Fit([][]string{{"c"}}); !errors.Is(err, ErrAlreadyFit) {
		t.Errorf("expected ErrAlreadyFit, got %v", err)
	}
}

func TestQueriesBeforeFit(t *testing.T) {
	m := NewModel()

	if _, err := m.TermWeight("a"); !errors.Is(err, ErrNotFit) {
		t.Errorf("TermWeight: expected ErrNotFit, got %v", err)
	}
	if _, err := m.Vectorize([]string{"a"}, 5); !errors.Is(err, ErrNotFit) {
		t.Errorf("Vectorize: expected ErrNotFit, got %v", err)
	}
	if _, err := m.DocumentWeight([]string{"a"}, 5); !errors.Is(err, ErrNotFit) {
		t.Errorf("DocumentWeight: expected ErrNotFit, got %v", err)
	}
	if _, err := m.VectorizeAll([][]string{{"a"}}, 5); !errors.Is(err, ErrNotFit) {
		t.Errorf("VectorizeAll: expected ErrNotFit, got %v", err)
	}
	if _, err := m.WeightAll([][]string{{"a"}}, 5); !errors.Is(err, ErrNotFit) {
		t.Errorf("WeightAll: expected ErrNotFit, got %v", err)
	}
	if vocab := m.Vocabulary(); vocab != nil {
		t.Errorf("Vocabulary before fit: expected nil, got %v", vocab)
	}
}

func TestTermWeight(t *testing.T) {
	// Corpus: a=2 occurrences in 2 docs, b=1 in 1, c=1 in 1; 4 tokens total.
	m := mustFit(t, [][]string{
		{"a", "b"},
		{"a", "c"},
	})

	tests := []struct {
		token    string
		expected float64
	}{
		{"a", 0},                        // present in every document: idf=1
		{"b", 0.25 * math.Log2(2.0)},    // (1/4) * log2(2/1)
		{"c", 0.25 * math.Log2(2.0)},
	}

	for _, test := range tests {
		w, err := m.TermWeight(test.token)
		if err != nil {
			t.Errorf("TermWeight(%q): unexpected error %v", test.token, err)
			continue
		}
		if !almostEqual(w, test.expected) {
			t.Errorf("TermWeight(%q) = %v, expected %v", test.token, w, test.expected)
		}
		if w < 0 {
			t.Errorf("TermWeight(%q) = %v, weights must be >= 0", test.token, w)
		}
	}
}

func TestTermWeightUnknownToken(t *testing.T) {
	m := mustFit(t, [][]string{{"a"}})

	_, err := m.TermWeight("zzz")
	var unknown *UnknownTokenError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTokenError, got %v", err)
	}
	if unknown.Token != "zzz" {
		t.Errorf("expected token %q in error, got %q", "zzz", unknown.Token)
	}
}

func TestVocabularyOrderAndImmutability(t *testing.T) {
	m := mustFit(t, [][]string{
		{"c", "a"},
		{"b", "a"},
	})

	expected := []string{"c", "a", "b"} // first-seen order
	vocab := m.Vocabulary()
	if len(vocab) != len(expected) {
		t.Fatalf("vocabulary size = %d, expected %d", len(vocab), len(expected))
	}
	for i, tok := range expected {
		if vocab[i] != tok {
			t.Errorf("vocab[%d] = %q, expected %q", i, vocab[i], tok)
		}
	}

	vocab[0] = "mutated"
	if m.Vocabulary()[0] != "c" {
		t.Error("Vocabulary must return a copy")
	}
}

func TestVectorizeValues(t *testing.T) {
	m := mustFit(t, [][]string{
		{"a", "b"},
		{"a", "c"},
	})

	wb := 0.25 * math.Log2(2.0)

	// doc shorter than threshold: normalize by threshold.
	vec, err := m.Vectorize([]string{"a", "b"}, 5)
	if err != nil {
		t.Fatalf("Vectorize failed: %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("vector length = %d, expected vocabulary size 3", len(vec))
	}
	expected := []float64{0, wb / 5, 0} // axes: a, b, c
	for i := range expected {
		if !almostEqual(vec[i], expected[i]) {
			t.Errorf("vec[%d] = %v, expected %v", i, vec[i], expected[i])
		}
	}
}

func TestVectorizePresenceNotCount(t *testing.T) {
	m := mustFit(t, [][]string{
		{"a", "b"},
		{"a", "c"},
	})

	once, err := m.Vectorize([]string{"b"}, 5)
	if err != nil {
		t.Fatalf("Vectorize failed: %v", err)
	}
	thrice, err := m.Vectorize([]string{"b", "b", "b"}, 5)
	if err != nil {
		t.Fatalf("Vectorize failed: %v", err)
	}
	if !almostEqual(once[1], thrice[1]) {
		t.Errorf("repeats changed the axis value: %v vs %v", once[1], thrice[1])
	}
}

func TestVectorizeSkipsUnknownTokens(t *testing.T) {
	m := mustFit(t, [][]string{{"a", "b"}, {"a", "c"}})

	vec, err := m.Vectorize([]string{"b", "zzz"}, 5)
	if err != nil {
		t.Fatalf("Vectorize must skip unknown tokens, got error: %v", err)
	}
	// The unknown token has no axis; only b contributes.
	if vec[0] != 0 || vec[2] != 0 {
		t.Errorf("unexpected nonzero axes in %v", vec)
	}
	if vec[1] == 0 {
		t.Errorf("known token axis should be nonzero: %v", vec)
	}
}

func TestNormalizationFactor(t *testing.T) {
	m := mustFit(t, [][]string{
		{"a", "b"},
		{"a", "c"},
	})
	wb := 0.25 * math.Log2(2.0)

	tests := []struct {
		name      string
		doc       []string
		threshold int
		expected  float64
	}{
		{"shorter than threshold", []string{"b"}, 5, wb / 5},
		{"at threshold", []string{"b", "c"}, 2, (wb + wb) / 2},
		{"longer than threshold", []string{"b", "c", "b"}, 2, (wb + wb + wb) / 3},
	}

	for _, test := range tests {
		w, err := m.DocumentWeight(test.doc, test.threshold)
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
			continue
		}
		if !almostEqual(w, test.expected) {
			t.Errorf("%s: weight = %v, expected %v", test.name, w, test.expected)
		}
	}
}

func TestDocumentWeightStrictOnUnknown(t *testing.T) {
	m := mustFit(t, [][]string{{"a", "b"}})

	_, err := m.DocumentWeight([]string{"a", "zzz"}, 5)
	var unknown *UnknownTokenError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTokenError, got %v", err)
	}
}

func TestBadThreshold(t *testing.T) {
	m := mustFit(t, [][]string{{"a"}})

	if _, err := m.Vectorize([]string{"a"}, 0); !errors.Is(err, ErrBadThreshold) {
		t.Errorf("Vectorize: expected ErrBadThreshold, got %v", err)
	}
	if _, err := m.DocumentWeight([]string{"a"}, -1); !errors.Is(err, ErrBadThreshold) {
		t.Errorf("DocumentWeight: expected ErrBadThreshold, got %v", err)
	}
}

func TestSingleDocumentCorpus(t *testing.T) {
	// Every token is in the only document, so idf=1 and every weight is 0.
	m := mustFit(t, [][]string{{"x", "y", "z"}})

	vec, err := m.Vectorize([]string{"x", "y", "z"}, 5)
	if err != nil {
		t.Fatalf("Vectorize failed: %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("vector length = %d, expected 3", len(vec))
	}
	for i, v := range vec {
		if v != 0 {
			t.Errorf("vec[%d] = %v, expected 0", i, v)
		}
	}
}

func TestVectorLengthsUniform(t *testing.T) {
	docs := [][]string{
		{"one", "two", "three"},
		{"two"},
		{},
		{"four", "four", "five"},
	}
	m := mustFit(t, docs)

	vectors, err := m.VectorizeAll(docs, 6)
	if err != nil {
		t.Fatalf("VectorizeAll failed: %v", err)
	}
	if len(vectors) != len(docs) {
		t.Fatalf("got %d vectors for %d docs", len(vectors), len(docs))
	}
	size := len(m.Vocabulary())
	for i, vec := range vectors {
		if len(vec) != size {
			t.Errorf("vector %d has length %d, expected %d", i, len(vec), size)
		}
	}
}

func TestWeightAllAgreesWithVectorSum(t *testing.T) {
	// For documents without repeated tokens, the sum over the document's
	// vector must equal its saliency weight: both derivations normalize the
	// same term-weight sum.
	docs := [][]string{
		{"red", "green", "blue"},
		{"red", "yellow"},
		{"cyan"},
	}
	m := mustFit(t, docs)

	vectors, err := m.VectorizeAll(docs, 6)
	if err != nil {
		t.Fatalf("VectorizeAll failed: %v", err)
	}
	weights, err := m.WeightAll(docs, 6)
	if err != nil {
		t.Fatalf("WeightAll failed: %v", err)
	}

	for i := range docs {
		var sum float64
		for _, v := range vectors[i] {
			sum += v
		}
		if !almostEqual(sum, weights[i]) {
			t.Errorf("doc %d: vector sum %v != weight %v", i, sum, weights[i])
		}
	}
}

func TestDocumentWeightCountsRepeats(t *testing.T) {
	m := mustFit(t, [][]string{
		{"a", "b"},
		{"a", "c"},
	})
	wb := 0.25 * math.Log2(2.0)

	w, err := m.DocumentWeight([]string{"b", "b"}, 2)
	if err != nil {
		t.Fatalf("DocumentWeight failed: %v", err)
	}
	if !almostEqual(w, (wb+wb)/2) {
		t.Errorf("weight = %v, expected %v", w, (wb+wb)/2)
	}
}
