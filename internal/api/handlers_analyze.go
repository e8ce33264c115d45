package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsight/internal/document"
	"github.com/dgallion1/docsight/internal/parser"
)

// FileFailure reports one file that could not be processed. The rest of the
// batch is unaffected.
type FileFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// handleAnalyze accepts a batch of uploaded documents and processes them
// sequentially in upload order: parse, analyze, append to the session store.
// A failure aborts only that file.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var results []document.AnalysisResult
	var failures []FileFailure
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		result, err := s.processFile(r, fh, filename)
		if err != nil {
			s.log.Warn("file rejected", "file", filename, "error", err)
			failures = append(failures, FileFailure{FileName: filename, Error: err.Error()})
			continue
		}
		results = append(results, s.store.Append(result))
	}

	if results == nil {
		results = []document.AnalysisResult{}
	}
	if failures == nil {
		failures = []FileFailure{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"results":  results,
		"failures": failures,
		"total":    s.store.Len(),
	})
}

// processFile stages one upload in a scratch file, parses it, and runs the
// analyzer. The scratch file is removed on every exit path.
func (s *Server) processFile(r *http.Request, fh *multipart.FileHeader, filename string) (document.AnalysisResult, error) {
	var zero document.AnalysisResult

	if !parser.IsSupportedExtension(filename) {
		return zero, &parser.UnsupportedFormatError{Ext: filepath.Ext(filename)}
	}
	if fh.Size > s.cfg.MaxUploadBytes {
		return zero, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return zero, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	// The format libraries want a real file path, so stage the upload in a
	// scratch file that keeps the original extension for dispatch.
	tmp, err := os.CreateTemp("", "docsight-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return zero, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, io.LimitReader(f, s.cfg.MaxUploadBytes+1)); err != nil {
		tmp.Close()
		return zero, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc, err := parser.Parse(tmpPath)
	if err != nil {
		return zero, err
	}
	// Parse saw the scratch path; the result should carry the upload's name.
	doc.FileName = filename

	return s.analyzer.Analyze(r.Context(), doc), nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
