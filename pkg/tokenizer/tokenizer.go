// Package tokenizer turns raw post text into the token sequences the
// hybridtfidf model consumes. It is a collaborator of the core, not part of
// it: callers with their own tokenization pipeline can skip this package and
// feed the model directly.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Tokenize splits text into lowercase word tokens, dropping punctuation-only
// tokens and English stopwords. The token order of the input is preserved.
func Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if !hasWordChar(word) || stopwords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens, nil
}

// TokenizeAll maps Tokenize over posts, preserving order.
func TokenizeAll(posts []string) ([][]string, error) {
	docs := make([][]string, len(posts))
	for i, post := range posts {
		tokens, err := Tokenize(post)
		if err != nil {
			return nil, err
		}
		docs[i] = tokens
	}
	return docs, nil
}

func hasWordChar(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// High-frequency English function words. On posts this short, any of these
// would otherwise dominate the corpus frequency table.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "for": true,
	"from": true, "had": true, "has": true, "have": true, "he": true,
	"her": true, "his": true, "i": true, "if": true, "in": true, "is": true,
	"it": true, "its": true, "me": true, "my": true, "no": true, "not": true,
	"of": true, "on": true, "or": true, "our": true, "she": true, "so": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "they": true, "this": true, "to": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "which": true,
	"who": true, "will": true, "with": true, "would": true, "you": true,
	"your": true,
}
