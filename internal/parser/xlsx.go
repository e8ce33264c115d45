package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXExtractor handles grid/spreadsheet documents. Cell values are read
// through excelize's cached-value layer, so formula cells yield their last
// computed result rather than the formula text.
type XLSXExtractor struct{}

func (p *XLSXExtractor) Extract(path string) (*Extraction, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer wb.Close()

	props, err := wb.GetDocProps()
	if err != nil {
		return nil, fmt.Errorf("read xlsx properties: %w", err)
	}
	metadata := map[string]string{
		"title":            props.Title,
		"creator":          props.Creator,
		"subject":          props.Subject,
		"keywords":         props.Keywords,
		"description":      props.Description,
		"created":          formatOPCTimestamp(props.Created),
		"modified":         formatOPCTimestamp(props.Modified),
		"last_modified_by": props.LastModifiedBy,
	}

	var lines []string
	for _, name := range wb.GetSheetList() {
		lines = append(lines, fmt.Sprintf("Sheet: %s", name))

		rows, err := wb.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		for _, row := range rows {
			rowText := strings.Join(row, " | ")
			if strings.TrimSpace(rowText) != "" {
				lines = append(lines, rowText)
			}
		}
	}

	return &Extraction{
		Text:     strings.Join(lines, "\n"),
		Metadata: metadata,
	}, nil
}
