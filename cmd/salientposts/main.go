package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/TFMV/SalientPosts/internal/summarizer"
	"github.com/TFMV/SalientPosts/pkg/config"
	"github.com/TFMV/SalientPosts/pkg/db"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	source := flag.String("source", "", "Post source to summarize")
	k := flag.Int("k", 0, "Number of posts to select (0 = configured default)")
	simThreshold := flag.Float64("sim", -1, "Cosine similarity cutoff (-1 = configured default)")
	normThreshold := flag.Int("threshold", 0, "Length normalization floor (0 = configured default)")
	flag.Parse()

	if *source == "" {
		fmt.Fprintln(os.Stderr, "usage: salientposts -source <source> [-config config.yaml] [-k n] [-sim t] [-threshold n]")
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	opts := summarizer.Options{
		K:                      cfg.Summarizer.K,
		SimilarityThreshold:    cfg.Summarizer.SimilarityThreshold,
		NormalizationThreshold: cfg.Summarizer.NormalizationThreshold,
	}
	if *k > 0 {
		opts.K = *k
	}
	if *simThreshold >= 0 && *simThreshold <= 1 {
		opts.SimilarityThreshold = *simThreshold
	}
	if *normThreshold > 0 {
		opts.NormalizationThreshold = *normThreshold
	}

	ctx := context.Background()
	pool, err := db.NewConnection(ctx, cfg.DBCreds)
	if err != nil {
		logger.Fatal("failed to create database connection pool", zap.Error(err))
	}
	defer pool.Close()

	runner := summarizer.NewRunner(summarizer.NewStore(pool), logger)
	runID, selected, err := runner.Run(ctx, *source, opts)
	if err != nil {
		logger.Fatal("summary run failed", zap.Error(err))
	}

	fmt.Printf("run %d: selected %d posts from source %q\n", runID, len(selected), *source)
	for rank, sel := range selected {
		fmt.Printf("%2d. [%.6f] %s\n", rank+1, sel.Weight, sel.Post)
	}
}
