package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wordscope/wordscope/internal/chart"
	"github.com/wordscope/wordscope/internal/cloud"
	"github.com/wordscope/wordscope/internal/extract"
	"github.com/wordscope/wordscope/internal/fetch"
	"github.com/wordscope/wordscope/internal/freq"
	"github.com/wordscope/wordscope/internal/metrics"
	"github.com/wordscope/wordscope/internal/normalize"
	"github.com/wordscope/wordscope/internal/segment"
	"github.com/wordscope/wordscope/internal/stopwords"
)

// MissingResourceError reports an absent or unreadable external resource,
// the stopword list or the word-cloud font. It aborts the run that needed
// the resource.
type MissingResourceError struct {
	Resource string
	Path     string
	Err      error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("missing %s resource at %s: %v", e.Resource, e.Path, e.Err)
}

func (e *MissingResourceError) Unwrap() error { return e.Err }

// App holds everything an analysis run needs. All pipeline setup happens in
// New, explicitly and once, so nothing relies on ambient state.
type App struct {
	cfg       Config
	fetcher   *fetch.Client
	segmenter *segment.Segmenter
	cloud     *cloud.Renderer
}

// Result is the outcome of one analysis run. The table owns the full
// frequency mapping; Top is the ranked listing shown to the user.
type Result struct {
	RunID   string
	URL     string
	Table   *freq.Table
	Top     []freq.Entry
	Elapsed time.Duration
}

// New validates the configured resources, loads the segmenter dictionary and
// builds the fetch and render clients. A misconfigured deployment fails here,
// at startup, rather than on the first user request.
func New(cfg Config) (*App, error) {
	if err := checkResource("stopwords", cfg.StopwordsPath); err != nil {
		return nil, err
	}
	if err := checkResource("font", cfg.FontPath); err != nil {
		return nil, err
	}

	seg, err := segment.New()
	if err != nil {
		return nil, err
	}
	log.Info().Msg("segmenter dictionary loaded")

	return &App{
		cfg: cfg,
		fetcher: &fetch.Client{
			UserAgent:    cfg.UserAgent,
			Timeout:      cfg.FetchTimeout,
			MaxBodyBytes: cfg.MaxBodyBytes,
		},
		segmenter: seg,
		cloud: &cloud.Renderer{
			FontPath: cfg.FontPath,
			Width:    cfg.CloudWidth,
			Height:   cfg.CloudHeight,
		},
	}, nil
}

func checkResource(name, path string) error {
	if _, err := os.Stat(path); err != nil {
		return &MissingResourceError{Resource: name, Path: path, Err: err}
	}
	return nil
}

func (a *App) Close() {
	// nothing yet
}

// Analyze runs the pipeline for one URL: fetch, extract, normalize, segment,
// aggregate. The stopword list is read fresh for every run. An empty page is
// not an error; it flows through as an empty table.
func (a *App) Analyze(ctx context.Context, rawURL string) (*Result, error) {
	runID := uuid.NewString()
	logger := log.With().Str("run", runID).Str("url", rawURL).Logger()
	start := time.Now()

	stop, err := stopwords.Load(a.cfg.StopwordsPath)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues(metrics.StatusResourceError).Inc()
		return nil, &MissingResourceError{Resource: "stopwords", Path: a.cfg.StopwordsPath, Err: err}
	}

	fetchStart := time.Now()
	page, err := a.fetcher.Get(ctx, rawURL)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues(metrics.StatusFetchError).Inc()
		logger.Warn().Err(err).Msg("fetch failed")
		return nil, err
	}
	metrics.FetchDuration.Observe(time.Since(fetchStart).Seconds())

	text := extract.BodyText(page)
	tokens := a.segmenter.Cut(normalize.Normalize(text))
	table := freq.Collect(tokens, stop)

	metrics.AnalysesTotal.WithLabelValues(metrics.StatusOK).Inc()
	metrics.TokensPerRun.Observe(float64(table.Len()))

	res := &Result{
		RunID:   runID,
		URL:     rawURL,
		Table:   table,
		Top:     table.TopN(chart.DefaultTopN),
		Elapsed: time.Since(start),
	}
	logger.Info().
		Int("distinct", table.Len()).
		Int("total", table.Total()).
		Dur("elapsed", res.Elapsed).
		Msg("analysis complete")
	return res, nil
}

// RenderCloud draws the word-cloud image for a completed run. ErrNoWords
// passes through for the caller to treat as an empty chart; a vanished font
// becomes a MissingResourceError.
func (a *App) RenderCloud(res *Result) ([]byte, error) {
	b, err := a.cloud.Render(res.Table)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			metrics.AnalysesTotal.WithLabelValues(metrics.StatusResourceError).Inc()
			return nil, &MissingResourceError{Resource: "font", Path: a.cfg.FontPath, Err: err}
		}
		return nil, err
	}
	return b, nil
}
