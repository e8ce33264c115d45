// Package analyze builds prompts from parsed documents, invokes a language
// model backend, and folds the response into a fixed four-field result.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dgallion1/docsight/internal/document"
)

// Sentinel field values. The analyzer never fails outward, so missing or
// broken data always degrades to one of these.
const (
	NotAvailable          = "Not available"
	CategoryUncategorized = "Uncategorized"
	CategoryError         = "Error"
	noSummary             = "No summary available"
	unparseableResponse   = "Unable to parse response"
)

const fallbackSummaryMax = 500

// Analyzer asks a Backend to summarize parsed documents.
type Analyzer struct {
	backend      Backend
	log          *slog.Logger
	maxTextChars int
}

func New(backend Backend, log *slog.Logger, maxTextChars int) *Analyzer {
	if maxTextChars <= 0 {
		maxTextChars = 8000
	}
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{backend: backend, log: log, maxTextChars: maxTextChars}
}

// Analyze produces exactly one result per document and never returns an
// error: backend and parse failures are encoded in the result itself.
// Metadata-derived dates always win over model-derived ones.
func (a *Analyzer) Analyze(ctx context.Context, doc *document.ParsedDocument) document.AnalysisResult {
	metaCreated, hasCreated := CreationDate(doc.Metadata)
	metaRevised, hasRevised := RevisionDate(doc.Metadata)

	text := TruncateText(doc.TextContent, a.maxTextChars)
	user := BuildUserPrompt(doc.FileName, text, doc.Metadata)

	raw, err := a.backend.Generate(ctx, SystemPrompt, user)
	if err != nil {
		a.log.Error("analyze failed", "file", doc.FileName, "error", err)
		result := document.AnalysisResult{
			FileName:     doc.FileName,
			CreationDate: NotAvailable,
			RevisionDate: NotAvailable,
			Summary:      fmt.Sprintf("Error analyzing document: %v", err),
			Category:     CategoryError,
		}
		if hasCreated {
			result.CreationDate = metaCreated
		}
		if hasRevised {
			result.RevisionDate = metaRevised
		}
		return result
	}

	parsed := parseResponse(raw)

	result := document.AnalysisResult{
		FileName:     doc.FileName,
		CreationDate: parsed.CreationDate,
		RevisionDate: parsed.RevisionDate,
		Summary:      parsed.Summary,
		Category:     parsed.Category,
	}
	if hasCreated {
		result.CreationDate = metaCreated
	}
	if hasRevised {
		result.RevisionDate = metaRevised
	}
	return result
}

type aiResponse struct {
	CreationDate string `json:"creation_date"`
	RevisionDate string `json:"revision_date"`
	Summary      string `json:"summary"`
	Category     string `json:"category"`
}

// parseResponse applies the two-stage fallback chain: strict JSON parse of
// the (fence-stripped) response, then truncated raw text. Each missing key
// defaults independently.
func parseResponse(raw string) aiResponse {
	text := stripCodeFence(raw)

	var parsed aiResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		summary := strings.TrimSpace(raw)
		if summary == "" {
			summary = unparseableResponse
		} else if len(summary) > fallbackSummaryMax {
			summary = summary[:fallbackSummaryMax]
		}
		return aiResponse{
			CreationDate: NotAvailable,
			RevisionDate: NotAvailable,
			Summary:      summary,
			Category:     CategoryUncategorized,
		}
	}

	if parsed.CreationDate == "" {
		parsed.CreationDate = NotAvailable
	}
	if parsed.RevisionDate == "" {
		parsed.RevisionDate = NotAvailable
	}
	if parsed.Summary == "" {
		parsed.Summary = noSummary
	}
	if parsed.Category == "" {
		parsed.Category = CategoryUncategorized
	}
	return parsed
}

var codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFenceRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}
