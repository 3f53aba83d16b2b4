package hybridtfidf

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFit is returned by any query issued before Fit completes.
	ErrNotFit = errors.New("hybridtfidf: model has not been fit")

	// ErrAlreadyFit is returned by Fit on a model that is already fit.
	// Models are single-use; construct a new one to refit.
	ErrAlreadyFit = errors.New("hybridtfidf: model already fit")

	// ErrEmptyCorpus is returned by Fit when no documents are supplied;
	// the corpus statistics would have undefined denominators.
	ErrEmptyCorpus = errors.New("hybridtfidf: empty corpus")

	// ErrBadThreshold is returned when a normalization threshold is < 1.
	ErrBadThreshold = errors.New("hybridtfidf: normalization threshold must be >= 1")
)

// UnknownTokenError reports a token outside the fitted vocabulary passed to
// an operation whose contract requires full vocabulary coverage.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("hybridtfidf: token %q not in fitted vocabulary", e.Token)
}
