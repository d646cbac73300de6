// Package analyzer drives the per-document pipeline: run every configured
// extraction strategy, filter each candidate table, and reconcile the
// survivors into one canonical table. Strategies are independent; one failing
// never aborts its siblings.
package analyzer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/danielokoye/bloodlens/constants"
	"github.com/danielokoye/bloodlens/internal/filter"
	"github.com/danielokoye/bloodlens/internal/medical"
	"github.com/danielokoye/bloodlens/internal/merge"
	"github.com/danielokoye/bloodlens/internal/ocr"
	"github.com/danielokoye/bloodlens/internal/report"
	"github.com/danielokoye/bloodlens/internal/vision"
)

// VisionExtractor is the vision-model strategy boundary.
type VisionExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType string) (report.ExtractionResult, error)
}

// TextExtractor is the OCR boundary (document path -> raw text).
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.Result, error)
}

// CatalogExtractor is the specialized catalog-driven strategy boundary.
type CatalogExtractor interface {
	Extract(ocrText string) report.ExtractionResult
}

// Cache stores canonical tables keyed by document content hash plus strategy
// configuration, so re-analyzing identical bytes is free.
type Cache interface {
	Get(ctx context.Context, key string) ([]report.TestResult, bool, error)
	Put(ctx context.Context, key string, rows []report.TestResult) error
}

// State is the terminal condition of one analysis.
type State string

const (
	// StateOK: the canonical table has at least one row.
	StateOK State = "OK"
	// StateFilteredOut: strategies produced candidates but filtering removed
	// every row ("results found but filtered out").
	StateFilteredOut State = "FILTERED_OUT"
	// StateNoResults: no strategy produced any candidate row.
	StateNoResults State = "NO_RESULTS"
)

// StrategyReport records what one strategy contributed.
type StrategyReport struct {
	Strategy  string
	Extracted int // rows before false-positive filtering
	Kept      int // rows after filtering
	Message   string
	Err       error // non-nil only on a hard strategy failure
}

// Outcome is the graded result of analyzing one document.
type Outcome struct {
	State       State
	Rows        []report.TestResult
	Strategies  []StrategyReport
	ContentHash string
	FromCache   bool
}

type Analyzer struct {
	vision      VisionExtractor // nil when the vision collaborator is unconfigured
	text        TextExtractor
	specialized CatalogExtractor
	cache       Cache // nil disables caching
	visionModel string
	logger      *slog.Logger
}

type Option func(*Analyzer)

// WithVision enables the vision-model strategy. The model name participates
// in the cache key, since cached tables are only valid for the configuration
// that produced them.
func WithVision(v VisionExtractor, model string) Option {
	return func(a *Analyzer) {
		a.vision = v
		a.visionModel = model
	}
}

// WithCache enables content-hash caching of canonical tables.
func WithCache(c Cache) Option {
	return func(a *Analyzer) { a.cache = c }
}

func New(text TextExtractor, specialized CatalogExtractor, logger *slog.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Analyzer{text: text, specialized: specialized, logger: logger}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze runs the multi-strategy flow for one document. The returned error
// is non-nil only when the document itself cannot be read; strategy failures
// are recorded in the outcome and degrade to "this strategy contributed
// nothing".
func (a *Analyzer) Analyze(ctx context.Context, path string) (Outcome, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{}, fmt.Errorf("read document: %w", err)
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	out := Outcome{ContentHash: hash}

	cacheKey := hash + ":" + a.visionModel
	if a.cache != nil {
		if rows, ok, cerr := a.cache.Get(ctx, cacheKey); cerr != nil {
			a.logger.Warn("analyze.cache.get_error", "error", cerr)
		} else if ok {
			a.logger.Info("analyze.cache.hit", "content_hash", hash, "rows", len(rows))
			out.State = StateOK
			out.Rows = rows
			out.FromCache = true
			return out, nil
		}
	}

	// Preference order is fixed: vision first, then specialized catalog
	// extraction. The reconciliation tie-break depends on it.
	var candidates []merge.Candidate

	if a.vision != nil {
		mime := constants.MIMEForExt(filepath.Ext(path))
		sr := a.runVision(ctx, data, mime)
		out.Strategies = append(out.Strategies, sr.report)
		if len(sr.kept) > 0 {
			candidates = append(candidates, merge.Candidate{Strategy: vision.StrategyName, Rows: sr.kept})
		}
	}

	sr := a.runSpecialized(ctx, path)
	out.Strategies = append(out.Strategies, sr.report)
	if len(sr.kept) > 0 {
		candidates = append(candidates, merge.Candidate{Strategy: medical.StrategyName, Rows: sr.kept})
	}

	out.Rows = merge.Combine(candidates)
	switch {
	case len(out.Rows) > 0:
		out.State = StateOK
	case anyExtracted(out.Strategies):
		out.State = StateFilteredOut
	default:
		out.State = StateNoResults
	}

	if out.State == StateOK && a.cache != nil {
		if cerr := a.cache.Put(ctx, cacheKey, out.Rows); cerr != nil {
			a.logger.Warn("analyze.cache.put_error", "error", cerr)
		}
	}

	a.logger.Info("analyze.done",
		"state", string(out.State),
		"rows", len(out.Rows),
		"strategies", len(out.Strategies),
		"content_hash", hash,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

type strategyRun struct {
	report StrategyReport
	kept   []report.TestResult
}

func (a *Analyzer) runVision(ctx context.Context, data []byte, mime string) strategyRun {
	run := strategyRun{report: StrategyReport{Strategy: vision.StrategyName}}

	res, err := a.vision.Extract(ctx, data, mime)
	if err != nil {
		run.report.Err = err
		run.report.Message = fmt.Sprintf("vision extraction failed: %v", err)
		a.logger.Warn("analyze.vision.error", "error", err)
		return run
	}
	return a.finishStrategy(run, res)
}

func (a *Analyzer) runSpecialized(ctx context.Context, path string) strategyRun {
	run := strategyRun{report: StrategyReport{Strategy: medical.StrategyName}}

	ocrRes, err := a.text.Extract(ctx, path)
	if err != nil {
		// OCR is a collaborator: its failure is this strategy's hard failure,
		// not a pipeline fault.
		run.report.Err = err
		run.report.Message = fmt.Sprintf("ocr failed: %v", err)
		a.logger.Warn("analyze.ocr.error", "error", err)
		return run
	}
	return a.finishStrategy(run, a.specialized.Extract(ocrRes.Text))
}

func (a *Analyzer) finishStrategy(run strategyRun, res report.ExtractionResult) strategyRun {
	run.report.Extracted = len(res.Rows)
	run.report.Message = res.Message
	if res.Empty() {
		return run
	}
	run.kept = filter.Apply(res.Rows)
	run.report.Kept = len(run.kept)
	if len(run.kept) == 0 {
		run.report.Message = "results found but filtered out"
	}
	return run
}

func anyExtracted(reports []StrategyReport) bool {
	for _, r := range reports {
		if r.Extracted > 0 {
			return true
		}
	}
	return false
}
