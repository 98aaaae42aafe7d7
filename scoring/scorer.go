// Package scoring ties the syllable counter, the statistics aggregator and
// the readability engine together and scores documents, one at a time or a
// whole corpus in parallel.
package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/c360studio/leesbaar/config"
	"github.com/c360studio/leesbaar/metrics"
	"github.com/c360studio/leesbaar/readability"
	"github.com/c360studio/leesbaar/syllable"
	"github.com/c360studio/leesbaar/textstats"
	"github.com/c360studio/leesbaar/token"
)

// Document is one tokenized text.
type Document struct {
	// ID identifies the document in reports. Empty IDs get a random UUID.
	ID        string
	Sentences [][]token.Token
}

// Report is the outcome for one document.
type Report struct {
	DocumentID string                          `json:"document_id"`
	Statistics textstats.Statistics            `json:"statistics"`
	Scores     readability.Results             `json:"scores"`
	Grades     map[readability.FormulaID][]int `json:"grades,omitempty"`
	Err        error                           `json:"-"`
}

// Scorer scores documents. It is safe for concurrent use.
type Scorer struct {
	aggregator *textstats.Aggregator
	counter    textstats.SyllableCounter
	engine     *readability.Engine
	formulas   []readability.FormulaID
	workers    int
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records lookups and scored documents.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scorer) {
		s.metrics = m
	}
}

// WithSyllableCounter replaces the dictionary-backed counter built from the
// resources, e.g. with a different language's estimator.
func WithSyllableCounter(c textstats.SyllableCounter) Option {
	return func(s *Scorer) {
		s.counter = c
	}
}

// New builds a Scorer from cfg over res. Custom formulas are registered
// next to the built-ins and the formula selection is checked here, so a bad
// configuration fails before any document is scored.
func New(cfg *config.Config, res *Resources, opts ...Option) (*Scorer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if res == nil {
		res = &Resources{}
	}

	s := &Scorer{
		formulas: cfg.FormulaIDs(),
		workers:  cfg.Scoring.Workers,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.NumCPU()
	}

	registry := readability.NewDefaultRegistry()
	for _, f := range cfg.Readability.Custom {
		if err := registry.Register(f); err != nil {
			return nil, fmt.Errorf("register formula: %w", err)
		}
	}
	s.engine = readability.NewEngine(registry)
	if err := s.engine.Validate(s.formulas...); err != nil {
		return nil, err
	}

	if s.counter == nil {
		s.counter = syllable.NewCounter(res.Dictionary,
			syllable.WithCompoundSplitting(cfg.Syllables.CompoundSplitting),
			syllable.WithMetrics(s.metrics),
		)
	}
	s.aggregator = textstats.NewAggregator(s.counter, res.Frequency,
		textstats.WithPolysyllableThreshold(cfg.Syllables.PolysyllableThreshold),
		textstats.WithExcludeNonLexical(cfg.Syllables.ExcludeNonLexical),
	)

	return s, nil
}

// Engine returns the readability engine used by the scorer.
func (s *Scorer) Engine() *readability.Engine {
	return s.engine
}

// ScoreDocument aggregates and scores one document. Failures are reported
// in Report.Err, never panicked.
func (s *Scorer) ScoreDocument(doc Document) (report Report) {
	start := time.Now()
	report.DocumentID = doc.ID
	if report.DocumentID == "" {
		report.DocumentID = uuid.NewString()
	}

	defer func() {
		if r := recover(); r != nil {
			report.Err = fmt.Errorf("document %s: scoring panicked: %v", report.DocumentID, r)
		}
		s.metrics.ObserveDocument(reportStatus(report), time.Since(start).Seconds())
	}()

	report.Statistics = s.aggregator.Compute(doc.Sentences)

	scores, err := s.engine.Score(report.Statistics, s.formulas...)
	if err != nil {
		report.Err = fmt.Errorf("document %s: %w", report.DocumentID, err)
		return report
	}
	report.Scores = scores
	report.Grades = s.grades(report.Statistics, scores)
	return report
}

// grades maps every score with grade bands; scores outside the bands and
// empty documents get none.
func (s *Scorer) grades(stats textstats.Statistics, scores readability.Results) map[readability.FormulaID][]int {
	if stats.IsEmpty() {
		return nil
	}
	out := make(map[readability.FormulaID][]int)
	for id, score := range scores {
		if g, err := s.engine.Grade(id, score); err == nil {
			out[id] = g
		}
	}
	return out
}

// ScoreCorpus scores docs on a bounded pool of workers. Reports come back in
// input order. A failing document only marks its own report; the error
// return is reserved for cancellation of ctx.
func (s *Scorer) ScoreCorpus(ctx context.Context, docs []Document) ([]Report, error) {
	reports := make([]Report, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range docs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			reports[i] = s.ScoreDocument(docs[i])
			if reports[i].Err != nil {
				s.logger.Warn("Document scoring failed",
					slog.String("document", reports[i].DocumentID),
					slog.String("error", reports[i].Err.Error()))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed, empty := 0, 0
	for _, r := range reports {
		switch {
		case r.Err != nil:
			failed++
		case r.Statistics.IsEmpty():
			empty++
		}
	}
	s.logger.Info("Scored corpus",
		slog.Int("documents", len(docs)),
		slog.Int("empty", empty),
		slog.Int("failed", failed),
		slog.Int("workers", s.workers))

	return reports, nil
}

func reportStatus(r Report) string {
	switch {
	case r.Err != nil:
		return metrics.StatusFailed
	case r.Statistics.IsEmpty():
		return metrics.StatusEmpty
	default:
		return metrics.StatusOK
	}
}
