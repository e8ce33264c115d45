package parser

import (
	"archive/zip"
	"encoding/xml"
	"strings"
	"time"
)

// Office Open XML containers (docx, pptx) keep their document properties in
// docProps/core.xml, outside what the body-parsing libraries expose.

type coreProperties struct {
	Title          string `xml:"title"`
	Creator        string `xml:"creator"`
	Subject        string `xml:"subject"`
	Keywords       string `xml:"keywords"`
	Description    string `xml:"description"`
	Created        string `xml:"created"`
	Modified       string `xml:"modified"`
	LastModifiedBy string `xml:"lastModifiedBy"`
}

// readCoreProperties extracts docProps/core.xml from an OPC zip. A container
// without the part yields zero-valued properties, not an error.
func readCoreProperties(path string) (coreProperties, error) {
	var props coreProperties

	zr, err := zip.OpenReader(path)
	if err != nil {
		return props, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "docProps/core.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return props, err
		}
		err = xml.NewDecoder(rc).Decode(&props)
		rc.Close()
		if err != nil {
			return props, err
		}
		break
	}
	return props, nil
}

var opcTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
}

// formatOPCTimestamp reformats a W3CDTF property value to
// "YYYY-MM-DD HH:MM:SS". Empty stays empty; an unparseable value is
// returned as-is.
func formatOPCTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range opcTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return raw
}
