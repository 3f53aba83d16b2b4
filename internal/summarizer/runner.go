package summarizer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Runner executes store-backed summarization runs.
type Runner struct {
	store *Store
	log   *zap.Logger
}

func NewRunner(store *Store, log *zap.Logger) *Runner {
	return &Runner{store: store, log: log}
}

// Run loads the posts for source, selects the salient subset, and persists
// the selection under a new run id.
func (r *Runner) Run(ctx context.Context, source string, opts Options) (int, []SelectedPost, error) {
	posts, err := r.store.LoadPosts(ctx, source)
	if err != nil {
		return 0, nil, err
	}
	if len(posts) == 0 {
		return 0, nil, fmt.Errorf("no posts found for source %q", source)
	}

	texts := make([]string, len(posts))
	for i, p := range posts {
		texts[i] = p.Text
	}

	selections, err := Summarize(texts, opts)
	if err != nil {
		return 0, nil, err
	}

	runID, err := r.store.CreateRun(ctx, fmt.Sprintf("salient selection for source %s", source))
	if err != nil {
		return 0, nil, err
	}
	if err := r.store.SaveSelections(ctx, runID, posts, selections); err != nil {
		return 0, nil, err
	}

	r.log.Info("summary run complete",
		zap.Int("run_id", runID),
		zap.String("source", source),
		zap.Int("posts", len(posts)),
		zap.Int("selected", len(selections)))

	return runID, selections, nil
}
