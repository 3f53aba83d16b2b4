// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

// Package summarizer wires tokenization, the Hybrid TF-IDF model, and salient
// selection into the post-summarization pipeline used by the API and the CLI.
package summarizer

import (
	"fmt"
	"sync"

	"github.com/TFMV/SalientPosts/pkg/hybridtfidf"
	"github.com/TFMV/SalientPosts/pkg/salient"
	"github.com/TFMV/SalientPosts/pkg/tokenizer"
)

// Options bound a summarization run.
type Options struct {
	// K is the maximum number of posts to select.
	K int
	// SimilarityThreshold is the cosine similarity at or above which a
	// candidate is rejected as redundant.
	SimilarityThreshold float64
	// NormalizationThreshold is the minimum document length used when
	// normalizing weights and vectors. Must stay constant for a corpus.
	NormalizationThreshold int
}

// SelectedPost is one chosen post together with its rank signal.
type SelectedPost struct {
	Index  int     `json:"index"`
	Post   string  `json:"post"`
	Weight float64 `json:"weight"`
}

// Summarize tokenizes posts, fits a Hybrid TF-IDF model over them, and
// returns the selected salient posts in original post order.
func Summarize(posts []string, opts Options) ([]SelectedPost, error) {
	if len(posts) == 0 {
		return nil, hybridtfidf.ErrEmptyCorpus
	}

	docs, err := tokenizeConcurrently(posts)
	if err != nil {
		return nil, err
	}

	model := hybridtfidf.NewModel()
	if err := model.Fit(docs); err != nil {
		return nil, err
	}

	vectors, err := model.VectorizeAll(docs, opts.NormalizationThreshold)
	if err != nil {
		return nil, err
	}
	weights, err := model.WeightAll(docs, opts.NormalizationThreshold)
	if err != nil {
		return nil, err
	}

	indices, err := salient.Select(vectors, weights, opts.K, opts.SimilarityThreshold)
	if err != nil {
		return nil, err
	}

	selected := make([]SelectedPost, 0, len(indices))
	for _, idx := range indices {
		selected = append(selected, SelectedPost{
			Index:  idx,
			Post:   posts[idx],
			Weight: weights[idx],
		})
	}
	return selected, nil
}

// maxTokenizers caps the goroutines spent on prose tokenization per batch.
const maxTokenizers = 50

func tokenizeConcurrently(posts []string) ([][]string, error) {
	docs := make([][]string, len(posts))
	errs := make([]error, len(posts))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxTokenizers)

	for i, post := range posts {
		wg.Add(1)
		go func(i int, post string) {
			defer wg.Done()
			sem <- struct{}{}
			docs[i], errs[i] = tokenizer.Tokenize(post)
			<-sem
		}(i, post)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("tokenize post %d: %w", i, err)
		}
	}
	return docs, nil
}
