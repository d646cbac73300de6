// Package filter is the second-stage heuristic classifier that rejects rows
// unlikely to represent real lab tests, whatever strategy produced them.
package filter

import (
	"regexp"
	"strings"

	"github.com/danielokoye/bloodlens/internal/report"
)

// skipWords mark a row as administrative/non-clinical when any of them occurs
// as a substring of the test name.
var skipWords = []string{
	"page", "street", "address", "phone", "fax", "email",
	"date", "time", "report", "sample", "lab",
	"hospital", "doctor", "patient", "reference", "iso",
	"area", "city", "state", "action", "order",
	"variation", "screening",
}

// clinicalTerms rescue a row: any of these as a substring of the name marks it
// as clinical regardless of the skip-list.
var clinicalTerms = []string{
	"haem", "hemo", "wbc", "rbc", "platelet", "lymph", "mono", "neutro", "baso",
	"eosin", "hct", "mcv", "mch", "mchc", "rdw", "mpv", "count", "cell", "band",
	"glucose", "hba1c", "chol", "trigly", "hdl", "ldl", "vldl", "creat",
	"urea", "uric", "bili", "protein", "albumin", "glob", "ast", "alt", "alp",
	"ggt", "ldh", "amylase", "lipase",
	"sodium", "potassium", "chloride", "calcium", "phosph", "magnes", "bicarb",
	"iron", "ferritin", "vitamin", "folate", "b12", "tsh", "t3", "t4", "ft3", "ft4",
	"cortisol", "estrogen", "testosterone", "progesterone", "insulin", "prolactin",
	"psa", "cea", "afp", "ca", "beta", "hcg",
	"esr", "crp", "rf", "ana",
	"blood", "serum", "plasma", "acid", "phosphatase", "transferase",
	"electro", "lipid", "liver", "kidney", "thyroid", "hormone", "enzym",
	"ratio", "index", "total", "direct", "indirect", "free", "bound", "clearance",
	"fraction", "level", "concentration", "mass", "volume",
	"troponin", "bnp", "fibrinogen", "d-dimer", "inr", "aptt", "pt",
	"homocysteine", "cystatin", "egfr", "iga", "igg", "igm", "ige",
}

var (
	rePureNumber = regexp.MustCompile(`^\d+$`)
	// Coded/numbered clinical terms like CD4, T3, B12, D3, Vitamin B6, Coenzyme Q10.
	reCodedTerm = regexp.MustCompile(`(?:cd\d+)|(?:t\d+)|(?:b\d+)|(?:d\d+)|(?:vitamin\s+[a-e]\d*)|(?:coenzyme\s+q\d+)`)
)

// Apply keeps a row when it does not look administrative, or when it looks
// clinical. The allow-list can rescue a row the skip-list would reject, but
// never the other way around; this permissive-OR policy is deliberate, even
// though it lets coincidental allow-list substrings rescue genuinely
// administrative rows.
func Apply(rows []report.TestResult) []report.TestResult {
	if len(rows) == 0 {
		return rows
	}
	kept := make([]report.TestResult, 0, len(rows))
	for _, r := range rows {
		if Keep(r.Test) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Keep classifies a single test name.
func Keep(name string) bool {
	lower := strings.ToLower(name)

	administrative := containsAny(lower, skipWords) ||
		rePureNumber.MatchString(name) ||
		len(name) <= 2

	clinical := containsAny(lower, clinicalTerms) || reCodedTerm.MatchString(lower)

	return !administrative || clinical
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
