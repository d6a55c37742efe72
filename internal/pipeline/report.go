// Package pipeline wires discovery, parsing, aggregation and rendering into
// one report run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"price-impact-report/internal/config"
	"price-impact-report/internal/discovery"
	"price-impact-report/internal/domain"
	"price-impact-report/internal/ingestion"
	"price-impact-report/internal/normalization"
	"price-impact-report/internal/observability"
	"price-impact-report/internal/reporting"
)

// Stage names used for logging and the stage duration histogram.
const (
	StageLocate    = "locate"
	StageParse     = "parse"
	StageAggregate = "aggregate"
	StageRender    = "render"
)

// Result describes a finished run.
type Result struct {
	RunID       domain.RunID
	ReportPath  string
	Summary     reporting.DataSummary
	Sufficiency *SufficiencyResult
	Dropped     []*domain.StrategyEvent
}

// ReportPipeline locates a run, parses its logs and writes the HTML dashboard.
type ReportPipeline struct {
	logDir   string
	runID    domain.RunID
	interval time.Duration
	layout   reporting.LayoutMode
	palette  reporting.Palette
	opener   reporting.Opener
	logger   zerolog.Logger
	metrics  *observability.Metrics
	clock    func() time.Time
}

// NewReportPipeline creates a pipeline from validated settings.
func NewReportPipeline(cfg *config.Config) *ReportPipeline {
	var opener reporting.Opener = reporting.NoopOpener{}
	if cfg.OpenBrowser {
		opener = reporting.BrowserOpener{}
	}
	return &ReportPipeline{
		logDir:   cfg.LogDir,
		runID:    domain.RunID(cfg.RunID),
		interval: cfg.CandleInterval,
		layout:   reporting.LayoutMode(cfg.Layout),
		palette:  reporting.DefaultPalette.Merge(cfg.Palette),
		opener:   opener,
		logger:   zerolog.Nop(),
		metrics:  observability.NewMetrics(""),
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// WithRunID pins the run instead of picking the newest one.
func (p *ReportPipeline) WithRunID(run domain.RunID) *ReportPipeline {
	p.runID = run
	return p
}

// WithLogger sets the logger.
func (p *ReportPipeline) WithLogger(logger zerolog.Logger) *ReportPipeline {
	p.logger = logger
	return p
}

// WithMetrics sets the metrics sink.
func (p *ReportPipeline) WithMetrics(m *observability.Metrics) *ReportPipeline {
	p.metrics = m
	return p
}

// WithOpener sets how the finished report is opened.
func (p *ReportPipeline) WithOpener(opener reporting.Opener) *ReportPipeline {
	p.opener = opener
	return p
}

// WithClock sets a custom clock function for deterministic output.
func (p *ReportPipeline) WithClock(clock func() time.Time) *ReportPipeline {
	p.clock = clock
	return p
}

// Metrics returns the metrics the pipeline records into.
func (p *ReportPipeline) Metrics() *observability.Metrics {
	return p.metrics
}

// Run executes the full pipeline:
//  1. Locate the run and resolve its four log files
//  2. Parse book, trades, stats and strategy events
//  3. Aggregate candles, volume, imbalance and strategy intervals
//  4. Build the figure and write report_<id>.html
func (p *ReportPipeline) Run(ctx context.Context) (*Result, error) {
	var (
		run   domain.RunID
		files discovery.RunFiles
		data  *RunData
		agg   *normalization.Result
		res   = &Result{}
	)

	err := p.stage(ctx, StageLocate, func() error {
		var err error
		run, err = p.locate()
		if err != nil {
			return err
		}
		files, err = discovery.ResolveAll(p.logDir, run)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.RunID = run
	log := p.logger.With().Str("run", run.String()).Logger()
	log.Info().Str("dir", p.logDir).Msg("run located")

	err = p.stage(ctx, StageParse, func() error {
		var err error
		data, err = p.parse(files)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("book_snapshots", len(data.Book.Snapshots)).
		Int("book_lines_skipped", data.Book.Skipped).
		Int("trades", len(data.Trades)).
		Int("stats", len(data.Stats)).
		Int("events", len(data.Events)).
		Msg("logs parsed")

	err = p.stage(ctx, StageAggregate, func() error {
		buys, sells := ingestion.SplitBySide(data.Trades)
		agg = normalization.Run(normalization.Input{
			Book:   data.Book.Snapshots,
			Trades: data.Trades,
			Buys:   buys,
			Sells:  sells,
			Events: data.Events,
		}, p.interval)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.metrics.RecordAggregates(len(agg.Candles), len(agg.Intervals))
	for _, ev := range agg.DroppedEvents {
		p.metrics.RecordDroppedEvent(ev.Strategy)
		log.Warn().
			Str("strategy", ev.Strategy).
			Time("ts", ev.Timestamp).
			Msg("deactivate without matching activate dropped")
	}
	res.Dropped = agg.DroppedEvents

	res.Sufficiency = CheckSufficiency(data, agg)
	for _, c := range res.Sufficiency.Failed() {
		log.Warn().
			Str("check", c.Name).
			Str("threshold", c.Threshold).
			Str("actual", c.Actual).
			Msg("insufficient data")
	}

	ds := &reporting.Dataset{
		RunID:     run,
		Candles:   agg.Candles,
		Volume:    agg.Volume,
		Imbalance: agg.Imbalance,
		Stats:     data.Stats,
		Intervals: agg.Intervals,
	}
	res.Summary = ds.Summary()

	err = p.stage(ctx, StageRender, func() error {
		fig, err := reporting.BuildFigure(ds, reporting.Options{
			Mode:           p.layout,
			Palette:        p.palette,
			CandleInterval: p.interval,
		})
		if err != nil {
			return err
		}
		res.ReportPath, err = reporting.NewEmitter(p.logDir, p.opener).WithLogger(log).Emit(run, fig)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.metrics.RecordReport(p.clock())
	log.Info().
		Str("path", res.ReportPath).
		Int("candles", res.Summary.CandleCount).
		Int("intervals", res.Summary.IntervalCount).
		Dur("span", res.Summary.Duration()).
		Msg("report saved")
	return res, nil
}

func (p *ReportPipeline) locate() (domain.RunID, error) {
	if p.runID != "" {
		return p.runID, nil
	}
	return discovery.LatestRun(p.logDir)
}

func (p *ReportPipeline) parse(files discovery.RunFiles) (*RunData, error) {
	book, err := parseFile(files[domain.LogKindBook], ingestion.ParseBook)
	if err != nil {
		return nil, err
	}
	trades, err := parseFile(files[domain.LogKindTrades], ingestion.ParseTrades)
	if err != nil {
		return nil, err
	}
	stats, err := parseFile(files[domain.LogKindStats], ingestion.ParseStats)
	if err != nil {
		return nil, err
	}
	events, err := parseFile(files[domain.LogKindStrategyEvents], ingestion.ParseStrategyEvents)
	if err != nil {
		return nil, err
	}

	p.metrics.RecordRows(string(domain.LogKindBook), book.Lines)
	p.metrics.RecordSkippedBookLines(book.Skipped)
	p.metrics.RecordRows(string(domain.LogKindTrades), len(trades))
	p.metrics.RecordRows(string(domain.LogKindStats), len(stats))
	p.metrics.RecordRows(string(domain.LogKindStrategyEvents), len(events))

	return &RunData{Book: book, Trades: trades, Stats: stats, Events: events}, nil
}

// stage runs fn after checking ctx and records its duration.
func (p *ReportPipeline) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	err := fn()
	p.metrics.ObserveStage(name, time.Since(start))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func parseFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
