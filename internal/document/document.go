// Package document defines the shared data model for the analysis pipeline.
package document

// ParsedDocument is the uniform output of the parser for one input file.
// It is immutable once returned.
type ParsedDocument struct {
	FileName     string            `json:"file_name"`
	FileSize     int64             `json:"file_size"`
	FileModified string            `json:"file_modified"`
	TextContent  string            `json:"text_content"`
	Metadata     map[string]string `json:"metadata"`
}

// AnalysisResult holds the structured summary produced for one document.
// Dates are ISO (YYYY-MM-DD) or the "Not available" sentinel.
type AnalysisResult struct {
	ID           string `json:"id"`
	FileName     string `json:"file_name"`
	CreationDate string `json:"creation_date"`
	RevisionDate string `json:"revision_date"`
	Summary      string `json:"summary"`
	Category     string `json:"category"`
}
