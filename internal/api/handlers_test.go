package api

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgallion1/docsight/internal/analyze"
	"github.com/dgallion1/docsight/internal/config"
	"github.com/dgallion1/docsight/internal/document"
	"github.com/dgallion1/docsight/internal/session"
	"github.com/xuri/excelize/v2"
)

type stubBackend struct {
	response string
	err      error
	calls    int
}

func (b *stubBackend) Generate(ctx context.Context, system, user string) (string, error) {
	b.calls++
	if b.err != nil {
		return "", b.err
	}
	return b.response, nil
}

func (b *stubBackend) Model() string { return "stub-model" }

func newTestServer(t *testing.T, backend analyze.Backend) (*Server, *session.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		Provider:       config.ProviderOpenAI,
		MaxUploadBytes: 10 << 20,
		MaxTextChars:   8000,
	}
	store := session.NewStore()
	analyzer := analyze.New(backend, log, cfg.MaxTextChars)
	return NewServer(analyzer, backend, analyze.NewStats(0), store, log, cfg), store
}

func xlsxBytes(t *testing.T) []byte {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()
	if err := wb.SetCellValue("Sheet1", "A1", "Test"); err != nil {
		t.Fatal(err)
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func pptxBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte(`<?xml version="1.0"?><p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>Test Slide</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func multipartBody(t *testing.T, files map[string][]byte, order []string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range order {
		fw, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(files[name]); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

type analyzeResponse struct {
	Results  []document.AnalysisResult `json:"results"`
	Failures []FileFailure             `json:"failures"`
	Total    int                       `json:"total"`
}

func TestAnalyzeBatchContinuesPastBadFile(t *testing.T) {
	backend := &stubBackend{response: `{"summary": "ok", "category": "Technical Documentation"}`}
	srv, store := newTestServer(t, backend)

	body, contentType := multipartBody(t, map[string][]byte{
		"one.xlsx":   xlsxBytes(t),
		"broken.pdf": []byte("not a pdf at all"),
		"three.pptx": pptxBytes(t),
	}, []string{"one.xlsx", "broken.pdf", "three.pptx"})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].FileName != "one.xlsx" || resp.Results[1].FileName != "three.pptx" {
		t.Errorf("expected results in upload order, got %q then %q",
			resp.Results[0].FileName, resp.Results[1].FileName)
	}
	if len(resp.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(resp.Failures))
	}
	if resp.Failures[0].FileName != "broken.pdf" {
		t.Errorf("expected failure for broken.pdf, got %q", resp.Failures[0].FileName)
	}
	if resp.Total != 2 {
		t.Errorf("expected running total 2, got %d", resp.Total)
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 stored results, got %d", store.Len())
	}
	if backend.calls != 2 {
		t.Errorf("expected backend called for parsed files only, got %d calls", backend.calls)
	}
}

func TestAnalyzeRejectsUnsupportedExtensionPerFile(t *testing.T) {
	backend := &stubBackend{response: `{"summary": "ok", "category": "Uncategorized"}`}
	srv, _ := newTestServer(t, backend)

	body, contentType := multipartBody(t, map[string][]byte{
		"notes.txt": []byte("plain text"),
	}, []string{"notes.txt"})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(resp.Failures))
	}
	if resp.Failures[0].Error != "unsupported file format: .txt" {
		t.Errorf("expected unsupported-format message naming the extension, got %q", resp.Failures[0].Error)
	}
}

func TestAnalyzeRequiresFiles(t *testing.T) {
	srv, _ := newTestServer(t, &stubBackend{})

	body, contentType := multipartBody(t, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestResultsListAndClear(t *testing.T) {
	backend := &stubBackend{response: `{"summary": "ok", "category": "Financial Report"}`}
	srv, store := newTestServer(t, backend)

	store.Append(document.AnalysisResult{FileName: "a.pdf", Category: "Financial Report"})
	store.Append(document.AnalysisResult{FileName: "b.pdf", Category: "Financial Report"})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/results", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var listResp struct {
		Results    []document.AnalysisResult `json:"results"`
		Categories map[string]int            `json:"categories"`
		Total      int                       `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if listResp.Total != 2 || len(listResp.Results) != 2 {
		t.Fatalf("expected 2 results, got %+v", listResp)
	}
	if listResp.Categories["Financial Report"] != 2 {
		t.Errorf("expected category breakdown, got %v", listResp.Categories)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/results", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if store.Len() != 0 {
		t.Errorf("expected store cleared, got %d", store.Len())
	}
}

func TestLLMStatsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &stubBackend{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/llm", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Provider string `json:"provider"`
		Model    string `json:"model"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Model != "stub-model" {
		t.Errorf("expected model %q, got %q", "stub-model", resp.Model)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, &stubBackend{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd.pdf", "passwd.pdf"},
		{"dir/file.docx", "file.docx"},
		{"", "unnamed"},
		{".", "unnamed"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
