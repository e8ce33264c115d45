package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// PPTXExtractor handles slide-deck documents. There is no dedicated Go
// library for reading pptx, but the container is a plain OPC zip, so slides
// are read straight from ppt/slides/slideN.xml.
type PPTXExtractor struct{}

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

func (p *PPTXExtractor) Extract(path string) (*Extraction, error) {
	props, err := readCoreProperties(path)
	if err != nil {
		return nil, fmt.Errorf("read pptx properties: %w", err)
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

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open pptx: %w", err)
	}
	defer zr.Close()

	// Collect slide parts and order them by slide number.
	type slidePart struct {
		num  int
		file *zip.File
	}
	var slides []slidePart
	for _, f := range zr.File {
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slidePart{num: n, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var lines []string
	for i, s := range slides {
		lines = append(lines, fmt.Sprintf("Slide %d:", i+1))

		rc, err := s.file.Open()
		if err != nil {
			return nil, fmt.Errorf("open slide %d: %w", s.num, err)
		}
		shapes, err := slideShapeTexts(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse slide %d: %w", s.num, err)
		}
		lines = append(lines, shapes...)
	}

	return &Extraction{
		Text:     strings.Join(lines, "\n"),
		Metadata: metadata,
	}, nil
}

// slideShapeTexts walks one slide's XML and returns the text of each shape
// that has any, in shape order. Within a shape, paragraph runs (a:t) are
// concatenated and paragraphs (a:p) are newline-separated.
func slideShapeTexts(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var shapes []string
	var shape strings.Builder
	inBody := false
	inRun := false
	paraOpen := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "txBody":
				inBody = true
				shape.Reset()
				paraOpen = false
			case "p":
				if inBody {
					if paraOpen {
						shape.WriteString("\n")
					}
					paraOpen = true
				}
			case "t":
				inRun = inBody
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "txBody":
				inBody = false
				if text := shape.String(); strings.TrimSpace(text) != "" {
					shapes = append(shapes, text)
				}
			case "t":
				inRun = false
			}
		case xml.CharData:
			if inRun {
				shape.Write(t)
			}
		}
	}
	return shapes, nil
}
