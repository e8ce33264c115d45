package analyze

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SystemPrompt fixes the response contract: a single JSON object with the
// four analysis keys, plus a suggested (non-exhaustive) category taxonomy.
const SystemPrompt = `You are an expert document analyzer.
Analyze the provided document and extract the following information:
1. Creation date (if mentioned in the document content)
2. Last revision date (if mentioned in the document content)
3. A concise summary of the document content (2-3 sentences)
4. A suggested category for classification

Respond ONLY with a JSON object in this exact format:
{
    "creation_date": "YYYY-MM-DD or 'Not found in content'",
    "revision_date": "YYYY-MM-DD or 'Not found in content'",
    "summary": "Brief summary of the document",
    "category": "Suggested category"
}

For the category, choose from or suggest: Financial Report, Technical Documentation,
Business Proposal, Legal Document, Research Paper, Meeting Minutes, Marketing Material,
Project Plan, Training Material, Policy Document, or other relevant category.`

// TruncationMarker is appended when document text exceeds the prompt budget.
const TruncationMarker = "\n... (truncated)"

// TruncateText caps text at max characters, marking the cut.
func TruncateText(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	return text[:max] + TruncationMarker
}

// BuildUserPrompt assembles the per-document instruction: file name,
// (possibly truncated) text content, and the metadata serialized as
// indented JSON.
func BuildUserPrompt(fileName, text string, metadata map[string]string) string {
	metaJSON, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		metaJSON = []byte("{}")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File name: %s\n\n", fileName))
	sb.WriteString("Document content:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nMetadata available:\n")
	sb.Write(metaJSON)
	sb.WriteString("\n\nAnalyze this document and provide the requested information in JSON format.")
	return sb.String()
}
