package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXExtractor handles flow-layout word-processor documents.
type DOCXExtractor struct{}

func (p *DOCXExtractor) Extract(path string) (*Extraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	props, err := readCoreProperties(path)
	if err != nil {
		return nil, fmt.Errorf("read docx properties: %w", err)
	}
	metadata := map[string]string{
		"title":            props.Title,
		"author":           props.Creator,
		"subject":          props.Subject,
		"keywords":         props.Keywords,
		"comments":         props.Description,
		"created":          formatOPCTimestamp(props.Created),
		"modified":         formatOPCTimestamp(props.Modified),
		"last_modified_by": props.LastModifiedBy,
	}

	// Body paragraphs first, then one line per table row. Tables go after
	// all paragraph text, not interleaved.
	var lines []string
	var tableLines []string
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			if text := paragraphText(it); strings.TrimSpace(text) != "" {
				lines = append(lines, text)
			}
		case *docx.Table:
			for _, row := range it.TableRows {
				var cells []string
				for _, cell := range row.TableCells {
					var parts []string
					for _, para := range cell.Paragraphs {
						parts = append(parts, paragraphText(para))
					}
					cells = append(cells, strings.Join(parts, "\n"))
				}
				rowText := strings.Join(cells, " | ")
				if strings.TrimSpace(rowText) != "" {
					tableLines = append(tableLines, rowText)
				}
			}
		}
	}
	lines = append(lines, tableLines...)

	return &Extraction{
		Text:     strings.Join(lines, "\n"),
		Metadata: metadata,
	}, nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}
