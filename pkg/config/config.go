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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/TFMV/SalientPosts/pkg/db"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	DBCreds    db.DBCreds       `yaml:"db_creds"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
}

// SummarizerConfig carries the two thresholds a caller must keep consistent
// per corpus, plus the selection bound.
type SummarizerConfig struct {
	K                      int     `yaml:"k"`
	SimilarityThreshold    float64 `yaml:"similarity_threshold"`
	NormalizationThreshold int     `yaml:"normalization_threshold"`
}

// defaultSummarizer matches the reference hybridtfidf package: top 10 posts,
// cosine cutoff 0.4, length normalization floor 6.
func defaultSummarizer() SummarizerConfig {
	return SummarizerConfig{
		K:                      10,
		SimilarityThreshold:    0.4,
		NormalizationThreshold: 6,
	}
}

// LoadConfig loads the configuration from a YAML file, filling unset
// summarizer values with the package defaults.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %v", err)
	}

	defaults := defaultSummarizer()
	if config.Summarizer.K <= 0 {
		config.Summarizer.K = defaults.K
	}
	if config.Summarizer.SimilarityThreshold <= 0 {
		config.Summarizer.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if config.Summarizer.NormalizationThreshold <= 0 {
		config.Summarizer.NormalizationThreshold = defaults.NormalizationThreshold
	}
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	return &config, nil
}
