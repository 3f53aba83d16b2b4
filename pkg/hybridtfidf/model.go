// Package hybridtfidf implements the Hybrid TF-IDF term-weighting scheme for
// corpora of short documents such as social-media posts.
//
// Unlike classical TF-IDF, a term's weight is computed once for the whole
// corpus and does not vary by document: term frequency is the term's share of
// all token occurrences in the corpus. Per-document variation comes only from
// token presence and length normalization, which is what makes the scheme
// usable on documents too short for per-document frequencies to carry signal.
package hybridtfidf

import "math"

// Model holds the frozen term statistics of a fitted corpus and produces
// per-document vectors and saliency weights against them.
//
// A Model is single-use: construct with NewModel, call Fit exactly once, then
// query. Every query method is safe for concurrent use once Fit has returned.
type Model struct {
	fitted bool

	vocab      []string // first-seen order; fixes the axis order of every vector
	vocabIndex map[string]int

	occurrences []int // total occurrences per vocabulary token across the corpus
	docPresence []int // number of documents containing the token at least once

	totalTokens int
	docCount    int

	weights []float64 // memoized term weight per vocabulary token
}

// NewModel returns an unfit Model. Every query fails with ErrNotFit until
// Fit has been called.
func NewModel() *Model {
	return &Model{vocabIndex: make(map[string]int)}
}

// Fit builds the vocabulary and term statistics from docs and memoizes the
// weight of every vocabulary token. Documents are ordered token sequences;
// individual documents may be empty, the corpus may not. Fit may be called
// once per Model; build a new instance to refit.
func (m *Model) Fit(docs [][]string) error {
	if m.fitted {
		return ErrAlreadyFit
	}
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, tok := range doc {
			idx, ok := m.vocabIndex[tok]
			if !ok {
				idx = len(m.vocab)
				m.vocabIndex[tok] = idx
				m.vocab = append(m.vocab, tok)
				m.occurrences = append(m.occurrences, 0)
				m.docPresence = append(m.docPresence, 0)
			}
			m.occurrences[idx]++
			m.totalTokens++
			if !seen[tok] {
				m.docPresence[idx]++
				seen[tok] = true
			}
		}
	}

	m.docCount = len(docs)
	m.weights = make([]float64, len(m.vocab))
	for i := range m.vocab {
		tf := float64(m.occurrences[i]) / float64(m.totalTokens)
		idf := float64(m.docCount) / float64(m.docPresence[i])
		m.weights[i] = tf * math.Log2(idf)
	}

	m.fitted = true
	return nil
}

// TermWeight returns the corpus-global weight of token: tf * log2(idf), where
// tf is the token's share of all corpus occurrences and idf is the document
// count over the number of documents containing the token. The weight is
// always >= 0; a token present in every document weighs exactly 0.
func (m *Model) TermWeight(token string) (float64, error) {
	if !m.fitted {
		return 0, ErrNotFit
	}
	idx, ok := m.vocabIndex[token]
	if !ok {
		return 0, &UnknownTokenError{Token: token}
	}
	return m.weights[idx], nil
}

// Vectorize returns doc's Hybrid TF-IDF vector: one axis per vocabulary token
// in first-seen order. An axis holds the token's term weight divided by
// max(threshold, len(doc)) when the token appears anywhere in doc, else 0.
// Presence is what counts; repeats do not raise an axis value.
//
// Tokens outside the fitted vocabulary are skipped: they cannot be scored and
// contribute nothing, though they still count toward doc's length in the
// normalization factor. threshold must be >= 1.
func (m *Model) Vectorize(doc []string, threshold int) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFit
	}
	if threshold < 1 {
		return nil, ErrBadThreshold
	}

	nf := normalizationFactor(doc, threshold)
	present := make(map[int]bool, len(doc))
	for _, tok := range doc {
		if idx, ok := m.vocabIndex[tok]; ok {
			present[idx] = true
		}
	}

	vec := make([]float64, len(m.vocab))
	for idx := range present {
		vec[idx] = m.weights[idx] / nf
	}
	return vec, nil
}

// DocumentWeight returns doc's saliency: the sum of term weights over the raw
// token sequence (repeated tokens counted each time), divided by
// max(threshold, len(doc)).
//
// Unlike Vectorize, a token outside the fitted vocabulary is an
// UnknownTokenError: silently skipping it would understate the document's
// saliency with no trace. Filter or re-tokenize before weighing new material.
func (m *Model) DocumentWeight(doc []string, threshold int) (float64, error) {
	if !m.fitted {
		return 0, ErrNotFit
	}
	if threshold < 1 {
		return 0, ErrBadThreshold
	}

	var sum float64
	for _, tok := range doc {
		idx, ok := m.vocabIndex[tok]
		if !ok {
			return 0, &UnknownTokenError{Token: tok}
		}
		sum += m.weights[idx]
	}
	return sum / normalizationFactor(doc, threshold), nil
}

// VectorizeAll maps Vectorize over docs, preserving order.
func (m *Model) VectorizeAll(docs [][]string, threshold int) ([][]float64, error) {
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vec, err := m.Vectorize(doc, threshold)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// WeightAll maps DocumentWeight over docs, preserving order.
func (m *Model) WeightAll(docs [][]string, threshold int) ([]float64, error) {
	weights := make([]float64, len(docs))
	for i, doc := range docs {
		w, err := m.DocumentWeight(doc, threshold)
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}
	return weights, nil
}

// Vocabulary returns the fitted vocabulary in first-seen order, which is the
// axis order of every vector the model produces. The returned slice is a
// copy. It is nil while the model is unfit.
func (m *Model) Vocabulary() []string {
	if !m.fitted {
		return nil
	}
	vocab := make([]string, len(m.vocab))
	copy(vocab, m.vocab)
	return vocab
}

// normalizationFactor dampens the weight of documents shorter than threshold
// without penalizing documents at or above it.
func normalizationFactor(doc []string, threshold int) float64 {
	if len(doc) < threshold {
		return float64(threshold)
	}
	return float64(len(doc))
}
