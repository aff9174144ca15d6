// Package priblix orchestrates tokenization, positional indexing, fuzzy
// expansion, proximity merging, and highlight rendering into a single
// search API over a finite, pre-loaded corpus.
package priblix

import (
	"log/slog"

	"priblix/highlight"
	"priblix/phrase"
	"priblix/posting"
	"priblix/tokenize"
)

// Config holds the options that select which tokenizer profile an index
// uses and the top-N default a search applies when the caller passes a
// topN of 0 or less. Search does not read DefaultFuzzy; it always uses the
// fuzzy argument it is given.
type Config struct {
	Tokenizer    tokenize.Tokenizer // profile used for both indexing and queries
	DefaultTopN  int
	DefaultFuzzy bool
}

// DefaultConfig returns the standard configuration: the default (non-URL)
// tokenizer, a top-10 cut, and strict (non-fuzzy) search.
func DefaultConfig() Config {
	return Config{
		Tokenizer:    tokenize.Default{},
		DefaultTopN:  10,
		DefaultFuzzy: false,
	}
}

// Result is one ranked, highlight-rendered hit.
type Result struct {
	EditDistance int
	MinDist      int
	Record       string
}

// Engine is a built, read-only search index plus the phrase engine that
// queries it. Construction is the only time either is written to.
type Engine struct {
	config Config
	index  *posting.Index
	engine *phrase.Engine
}

// New builds an Engine over records using config. Records are indexed once;
// the resulting Engine is safe for repeated, read-only Search calls.
func New(records []string, config Config) *Engine {
	idx := posting.New(records, config.Tokenizer)
	return &Engine{
		config: config,
		index:  idx,
		engine: phrase.NewEngine(idx),
	}
}

// NewDefault builds an Engine over records using DefaultConfig.
func NewDefault(records []string) *Engine {
	return New(records, DefaultConfig())
}

// Search resolves query against the index and returns up to topN ranked,
// highlight-rendered results. A topN of 0 or less uses the engine's
// configured default.
func (e *Engine) Search(query string, topN int, fuzzy bool) []Result {
	if topN <= 0 {
		topN = e.config.DefaultTopN
	}

	slog.Info("search", slog.String("query", query), slog.Int("top_n", topN), slog.Bool("fuzzy", fuzzy))

	candidates := e.engine.Search(query, topN, fuzzy)

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		record := e.index.Records[c.DocID]
		merged := highlight.Merge(c.Highlights)
		results[i] = Result{
			EditDistance: c.EditDistance,
			MinDist:      c.MinDist,
			Record:       highlight.Render(record, merged),
		}
	}

	return results
}

// Records returns the first n records of the corpus, unhighlighted, or the
// whole corpus when n exceeds its size.
func (e *Engine) Records(n int) []string {
	if n > len(e.index.Records) {
		n = len(e.index.Records)
	}
	return e.index.Records[:n]
}

// Len returns the number of records in the corpus.
func (e *Engine) Len() int {
	return len(e.index.Records)
}
