// Package salient selects a small, non-redundant subset of documents that
// best represents a corpus, given the per-document vectors and saliency
// weights produced by a fitted hybridtfidf.Model. Selection is a pure
// function of its inputs; the package holds no state.
package salient

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNoVectors is returned by Select when vectors is empty.
	ErrNoVectors = errors.New("salient: no vectors")

	// ErrLengthMismatch is returned by Select when vectors and weights
	// differ in length.
	ErrLengthMismatch = errors.New("salient: vectors and weights differ in length")

	// ErrRaggedVectors is returned by Select when the vectors do not all
	// share one dimensionality.
	ErrRaggedVectors = errors.New("salient: vectors differ in dimension")

	// ErrBadK is returned by Select when k is not positive.
	ErrBadK = errors.New("salient: k must be > 0")
)

// Cosine returns the cosine similarity dot(a,b) / (|a|*|b|).
//
// If either vector is the zero vector the similarity is 0: a document whose
// every term carries zero weight is treated as maximally dissimilar, so it
// never blocks the selection of anything else and nothing blocks it.
func Cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// Select greedily picks up to k documents, highest saliency weight first,
// rejecting any candidate whose cosine similarity to an already-selected
// document is >= simThreshold. The highest-weighted document is always
// selected. Equal weights rank by lower original index, so identical inputs
// always produce identical output.
//
// The ith vector and ith weight must describe the same document. The returned
// indices refer to that original ordering and are sorted into it. Fewer than
// k indices come back when candidates run out or too many are rejected as
// redundant; that is not an error.
func Select(vectors [][]float64, weights []float64, k int, simThreshold float64) ([]int, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	if len(vectors) != len(weights) {
		return nil, ErrLengthMismatch
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	dim := len(vectors[0])
	for _, v := range vectors[1:] {
		if len(v) != dim {
			return nil, ErrRaggedVectors
		}
	}

	// Rank by weight descending; the stable sort keeps ties in ascending
	// original-index order.
	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] > weights[order[b]]
	})

	selected := []int{order[0]}
	for _, cand := range order[1:] {
		if len(selected) >= k {
			break
		}
		redundant := false
		for _, s := range selected {
			if Cosine(vectors[cand], vectors[s]) >= simThreshold {
				redundant = true
				break
			}
		}
		if !redundant {
			selected = append(selected, cand)
		}
	}

	sort.Ints(selected)
	return selected, nil
}
