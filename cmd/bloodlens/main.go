package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/danielokoye/bloodlens/internal/analyzer"
	"github.com/danielokoye/bloodlens/internal/cache"
	"github.com/danielokoye/bloodlens/internal/catalog"
	"github.com/danielokoye/bloodlens/internal/common"
	"github.com/danielokoye/bloodlens/internal/export"
	"github.com/danielokoye/bloodlens/internal/medical"
	"github.com/danielokoye/bloodlens/internal/ocr"
	"github.com/danielokoye/bloodlens/internal/parser"
	"github.com/danielokoye/bloodlens/internal/qa"
	"github.com/danielokoye/bloodlens/internal/report"
	"github.com/danielokoye/bloodlens/internal/repository"
	"github.com/danielokoye/bloodlens/internal/vision"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	var (
		xlsxPath = flag.String("xlsx", "", "write the result table to this XLSX file")
		save     = flag.Bool("save", false, "persist the result table to the reports database (requires DB_URL)")
		name     = flag.String("name", "", "name for the saved report (defaults to the filename)")
		question = flag.String("ask", "", "ask a question about the results after analysis")
		generic  = flag.Bool("generic", false, "run only the generic line parsers on the OCR text and print both tables")
		noCache  = flag.Bool("no-cache", false, "skip the content-hash extraction cache")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <document.pdf|image>\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	docPath := flag.Arg(0)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := catalog.Default()
	if cfg.Catalog.OverlayPath != "" {
		overlay, err := catalog.LoadOverlay(cfg.Catalog.OverlayPath)
		if err != nil {
			logger.Error("failed to load catalog overlay", "path", cfg.Catalog.OverlayPath, "error", err)
			os.Exit(1)
		}
		cat, err = cat.Merge(overlay)
		if err != nil {
			logger.Error("invalid catalog overlay", "path", cfg.Catalog.OverlayPath, "error", err)
			os.Exit(1)
		}
		logger.Info("catalog overlay loaded", "path", cfg.Catalog.OverlayPath, "entries", cat.Len())
	}

	ocrExt := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	if *generic {
		runGenericParsers(ctx, ocrExt, docPath)
		return
	}

	var opts []analyzer.Option
	var responder *qa.Responder
	if cfg.Vision.APIKey != "" {
		client, err := vision.NewClient(ctx, vision.Config{
			APIKey:  cfg.Vision.APIKey,
			Model:   cfg.Vision.Model,
			Timeout: cfg.Vision.Timeout,
		}, logger)
		if err != nil {
			logger.Error("failed to create vision client", "error", err)
			os.Exit(1)
		}
		opts = append(opts, analyzer.WithVision(vision.NewExtractor(client, logger), cfg.Vision.Model))
		responder = qa.NewResponder(client, logger)
	} else {
		logger.Info("GEMINI_API_KEY not set, vision strategy disabled")
	}

	if !*noCache {
		store, err := cache.Open(cfg.Cache.Path, logger)
		if err != nil {
			logger.Error("failed to open extraction cache", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		opts = append(opts, analyzer.WithCache(store))
	}

	a := analyzer.New(ocrExt, medical.NewExtractor(cat, logger), logger, opts...)
	out, err := a.Analyze(ctx, docPath)
	if err != nil {
		logger.Error("analysis failed", "file", docPath, "error", err)
		os.Exit(1)
	}

	printOutcome(out)
	if out.State != analyzer.StateOK {
		return
	}

	if *xlsxPath != "" {
		data, err := export.NewService(logger).ResultsXLSX(out.Rows)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, data, 0o644); err != nil {
			logger.Error("failed to write xlsx file", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d rows to %s\n", len(out.Rows), *xlsxPath)
	}

	if *save {
		if err := saveReport(ctx, cfg, logger, *name, docPath, out); err != nil {
			logger.Error("failed to save report", "error", err)
			os.Exit(1)
		}
	}

	if *question != "" {
		source, answer := qa.AskWithFallback(ctx, responder, out.Rows, *question)
		fmt.Printf("\n[%s]\n%s\n", source, answer)
	}
}

func runGenericParsers(ctx context.Context, ocrExt *ocr.Extractor, docPath string) {
	res, err := ocrExt.Extract(ctx, docPath)
	if err != nil {
		slog.Error("ocr failed", "file", docPath, "error", err)
		os.Exit(1)
	}
	strict := parser.ParseStrict(res.Text)
	fmt.Printf("%s: %s\n", parser.StrictStrategyName, strict.Message)
	printTable(strict.Rows)
	tolerant := parser.ParseTolerant(res.Text)
	fmt.Printf("\n%s: %s\n", parser.TolerantStrategyName, tolerant.Message)
	printTable(tolerant.Rows)
}

func saveReport(ctx context.Context, cfg *common.Config, logger *slog.Logger, name, docPath string, out analyzer.Outcome) error {
	if cfg.Database.DSN == "" {
		return fmt.Errorf("DB_URL is required to save reports")
	}
	pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return err
	}
	defer repository.Close(pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		return err
	}

	repo := repository.NewReportRepository(pool, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if name == "" {
		name = filepath.Base(docPath)
	}
	id, err := repo.Save(ctx, name, filepath.Base(docPath), out.ContentHash, out.Rows)
	if err != nil {
		return err
	}
	fmt.Printf("Saved report %s (%s)\n", name, id)
	return nil
}

func printOutcome(out analyzer.Outcome) {
	for _, sr := range out.Strategies {
		line := fmt.Sprintf("%s: extracted %d, kept %d", sr.Strategy, sr.Extracted, sr.Kept)
		if sr.Message != "" {
			line += " (" + sr.Message + ")"
		}
		fmt.Println(line)
	}

	switch out.State {
	case analyzer.StateOK:
		if out.FromCache {
			fmt.Println("Loaded results from cache.")
		}
		fmt.Println()
		printTable(out.Rows)
	case analyzer.StateFilteredOut:
		fmt.Println("Results found but filtered out.")
	case analyzer.StateNoResults:
		fmt.Println("No test data could be extracted.")
	}
}

func printTable(rows []report.TestResult) {
	if len(rows) == 0 {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TEST\tVALUE\tUNITS\tRANGE\tSTATUS\tSOURCE")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\t%s\t%s\n",
			r.Test, r.Value, r.Units, r.ReferenceRange, r.Status, r.Source)
	}
	w.Flush()
}
