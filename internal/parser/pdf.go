package parser

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor handles fixed-layout paginated documents.
type PDFExtractor struct{}

func (p *PDFExtractor) Extract(path string) (res *Extraction, err error) {
	// The pdf library panics on some malformed files; surface that as an
	// ordinary extraction error.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info := reader.Trailer().Key("Info")
	metadata := map[string]string{
		"title":             info.Key("Title").Text(),
		"author":            info.Key("Author").Text(),
		"subject":           info.Key("Subject").Text(),
		"creator":           info.Key("Creator").Text(),
		"producer":          info.Key("Producer").Text(),
		"creation_date":     info.Key("CreationDate").Text(),
		"modification_date": info.Key("ModDate").Text(),
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	return &Extraction{
		Text:     strings.Join(pages, "\n"),
		Metadata: metadata,
	}, nil
}
