// Package vision extracts test rows directly from the document image via a
// vision/language model and interprets its line-oriented text response.
package vision

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/danielokoye/bloodlens/internal/report"
)

// StrategyName tags rows produced by this extractor after reconciliation.
const StrategyName = "Gemini Vision"

var (
	reFirstNumber = regexp.MustCompile(`[\d.]+`)
	reUnitsRun    = regexp.MustCompile(`[\d.]+\s+([A-Za-z/%0-9\s]+)`)
	reParenRange  = regexp.MustCompile(`\(([^)]+)\)`)

	// Administrative lines the model sometimes emits despite the prompt.
	interpreterSkipTerms = []string{"date", "patient", "doctor", "name", "id", "address", "phone", "fax"}
)

type Extractor struct {
	gen    Generator
	logger *slog.Logger
}

func NewExtractor(gen Generator, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{gen: gen, logger: logger}
}

// Extract sends the raw document bytes to the model and interprets the
// response. A transport failure is a hard strategy failure (non-nil error);
// a response that yields zero valid rows is an empty result with a
// descriptive message.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (report.ExtractionResult, error) {
	start := time.Now()
	e.logger.Info("vision.extract.start", "bytes", len(data), "mime", mimeType)

	text, err := e.gen.Generate(ctx, ExtractionPrompt, data, mimeType)
	if err != nil {
		return report.ExtractionResult{}, err
	}

	rows := ParseResponse(text)
	e.logger.Info("vision.extract.done",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if len(rows) == 0 {
		return report.ExtractionResult{Message: "No test data could be extracted"}, nil
	}
	return report.ExtractionResult{Rows: rows, Message: "ok"}, nil
}

// ParseResponse interprets the model's line-delimited, colon-separated
// response (TEST_NAME: VALUE UNITS (REFERENCE_RANGE)). Malformed lines are
// skipped; rows for well-known tests whose value falls outside a wide
// physiological sanity band are rejected outright.
func ParseResponse(text string) []report.TestResult {
	var rows []report.TestResult
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}

		name := cleanName(parts[0])
		if len(name) < 2 || hasInterpreterSkipTerm(name) {
			continue
		}
		valPart := strings.TrimSpace(parts[1])

		numMatch := reFirstNumber.FindString(valPart)
		if numMatch == "" {
			continue
		}
		val, err := strconv.ParseFloat(numMatch, 64)
		if err != nil {
			continue
		}

		units := ""
		if m := reUnitsRun.FindStringSubmatch(valPart); m != nil {
			units = strings.TrimSpace(m[1])
		}

		refRange := report.RangeUnknown
		if m := reParenRange.FindStringSubmatch(valPart); m != nil {
			refRange = m[1]
		}

		if !plausible(name, val) {
			continue
		}

		rows = append(rows, report.TestResult{
			Test:           name,
			Value:          val,
			Units:          units,
			ReferenceRange: refRange,
			Status:         report.Classify(val, refRange),
		})
	}
	return rows
}

// cleanName strips the markdown emphasis characters and underscores the model
// tends to wrap names in.
func cleanName(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(s)
}

func hasInterpreterSkipTerm(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range interpreterSkipTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
