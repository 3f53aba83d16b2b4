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

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TFMV/SalientPosts/internal/summarizer"
	"github.com/TFMV/SalientPosts/pkg/config"
	"github.com/TFMV/SalientPosts/pkg/hybridtfidf"
	"github.com/TFMV/SalientPosts/pkg/salient"
)

// SummarizeRequest is the inline summarization payload. Unset tuning fields
// fall back to the configured defaults.
type SummarizeRequest struct {
	Posts                  []string `json:"posts"`
	K                      int      `json:"k"`
	SimilarityThreshold    *float64 `json:"similarity_threshold"`
	NormalizationThreshold int      `json:"normalization_threshold"`
}

// BatchRequest asks for a summarization run over stored posts.
type BatchRequest struct {
	Source                 string   `json:"source"`
	K                      int      `json:"k"`
	SimilarityThreshold    *float64 `json:"similarity_threshold"`
	NormalizationThreshold int      `json:"normalization_threshold"`
}

func resolveOptions(k int, sim *float64, norm int, defaults config.SummarizerConfig) summarizer.Options {
	opts := summarizer.Options{
		K:                      defaults.K,
		SimilarityThreshold:    defaults.SimilarityThreshold,
		NormalizationThreshold: defaults.NormalizationThreshold,
	}
	if k > 0 {
		opts.K = k
	}
	if sim != nil {
		opts.SimilarityThreshold = *sim
	}
	if norm > 0 {
		opts.NormalizationThreshold = norm
	}
	return opts
}

func statusFor(err error) int {
	if errors.Is(err, hybridtfidf.ErrEmptyCorpus) ||
		errors.Is(err, hybridtfidf.ErrBadThreshold) ||
		errors.Is(err, salient.ErrBadK) ||
		errors.Is(err, salient.ErrNoVectors) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func SummarizeHandler(defaults config.SummarizerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SummarizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Posts) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "posts must not be empty"})
			return
		}

		opts := resolveOptions(req.K, req.SimilarityThreshold, req.NormalizationThreshold, defaults)
		selected, err := summarizer.Summarize(req.Posts, opts)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "success",
			"selected": selected,
		})
	}
}

func SummarizeBatchHandler(runner *summarizer.Runner, defaults config.SummarizerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Source == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "source is required"})
			return
		}

		opts := resolveOptions(req.K, req.SimilarityThreshold, req.NormalizationThreshold, defaults)
		runID, selected, err := runner.Run(c.Request.Context(), req.Source, opts)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "success",
			"run_id":   runID,
			"selected": selected,
		})
	}
}

func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
		})
	}
}

func SetupRoutes(router *gin.Engine, runner *summarizer.Runner, defaults config.SummarizerConfig, logger *zap.Logger) {
	router.Use(RequestLogger(logger))
	router.POST("/summarize", SummarizeHandler(defaults))
	router.POST("/summarize/batch", SummarizeBatchHandler(runner, defaults))
	router.GET("/health", HealthCheckHandler())
}
