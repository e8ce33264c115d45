// Package parser turns office documents into a uniform text + metadata shape.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsight/internal/document"
)

// Extraction is the uniform output of every format extractor: the document's
// textual units newline-joined, plus string-valued property metadata. Each
// extractor emits its full key set; absent properties are empty strings.
type Extraction struct {
	Text     string
	Metadata map[string]string
}

// Extractor reads one container format.
type Extractor interface {
	Extract(path string) (*Extraction, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".xlsx": true,
	".pptx": true,
}

// IsSupportedExtension checks if a filename's extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// UnsupportedFormatError reports an extension outside the allow-list.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// ParseError wraps an extractor failure with the format it came from.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// forFile returns the extractor and format name for a filename.
func forFile(filename string) (Extractor, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, "pdf", nil
	case ".docx":
		return &DOCXExtractor{}, "docx", nil
	case ".xlsx":
		return &XLSXExtractor{}, "xlsx", nil
	case ".pptx":
		return &PPTXExtractor{}, "pptx", nil
	default:
		return nil, "", &UnsupportedFormatError{Ext: ext}
	}
}

// Parse reads the file at path and returns its text content, embedded
// properties, and file-system metadata. The extension picks the extractor;
// extractor failures come back as *ParseError.
func Parse(path string) (*document.ParsedDocument, error) {
	extractor, format, err := forFile(path)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	res, err := extractor.Extract(path)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	return &document.ParsedDocument{
		FileName:     filepath.Base(path),
		FileSize:     fi.Size(),
		FileModified: fi.ModTime().Format("2006-01-02 15:04:05"),
		TextContent:  res.Text,
		Metadata:     res.Metadata,
	}, nil
}
