package qa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielokoye/bloodlens/internal/report"
	"github.com/danielokoye/bloodlens/internal/vision"
)

// Responder answers questions through the language model, grounding it on the
// canonical table only. Callers fall back to Answer on any error.
type Responder struct {
	gen    vision.Generator
	logger *slog.Logger
}

func NewResponder(gen vision.Generator, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{gen: gen, logger: logger}
}

// Ask builds the grounding context from the table and asks the model.
func (r *Responder) Ask(ctx context.Context, rows []report.TestResult, question string) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no test data available")
	}
	start := time.Now()

	prompt := buildQuestionPrompt(rows, question)
	answer, err := r.gen.Generate(ctx, prompt, nil, "")
	if err != nil {
		r.logger.Warn("qa.ask.error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	r.logger.Debug("qa.ask.ok", "elapsed_ms", time.Since(start).Milliseconds())
	return answer, nil
}

// AskWithFallback tries the model and degrades to the deterministic responder
// when the model is unavailable or fails.
func AskWithFallback(ctx context.Context, r *Responder, rows []report.TestResult, question string) (source, answer string) {
	if r != nil {
		if a, err := r.Ask(ctx, rows, question); err == nil {
			return "Gemini Medical Assistant", a
		}
	}
	return "Basic Response", Answer(rows, question)
}

func buildQuestionPrompt(rows []report.TestResult, question string) string {
	var normal, abnormal strings.Builder
	for _, r := range rows {
		if r.Status == report.StatusNormal {
			fmt.Fprintf(&normal, "- %s: %v %s (Reference Range: %s)\n", r.Test, r.Value, r.Units, r.ReferenceRange)
			continue
		}
		direction := "LOW"
		if r.Status == report.StatusHigh {
			direction = "ELEVATED"
		}
		fmt.Fprintf(&abnormal, "- %s: %v %s (%s, Reference Range: %s)\n", r.Test, r.Value, r.Units, direction, r.ReferenceRange)
	}

	var b strings.Builder
	b.WriteString("Blood Test Results:\n\n")
	if abnormal.Len() > 0 {
		b.WriteString("ABNORMAL RESULTS:\n")
		b.WriteString(abnormal.String())
		b.WriteString("\n")
	}
	if normal.Len() > 0 {
		b.WriteString("NORMAL RESULTS:\n")
		b.WriteString(normal.String())
	}

	return fmt.Sprintf(`
You are a medical assistant helping interpret blood test results. Answer the following question based ONLY on the blood test data provided.

%s

QUESTION: %s

IMPORTANT GUIDELINES:
1. Only discuss tests that appear in the results above
2. For abnormal values, explain what they might indicate without making definitive diagnoses
3. If asked about a test that isn't in the data, clearly state that information is not available
4. Use simple, patient-friendly language
5. Include relevant reference ranges when discussing specific tests
6. Always recommend consulting a healthcare professional for medical advice

YOUR ANSWER:
`, b.String(), question)
}
