package analyze

import (
	"strings"
	"time"
)

// Document properties name their timestamps differently per format. Each
// logical field probes a fixed priority list of aliases, first match wins.
var (
	createdAliases  = []string{"created", "creation_date", "CreationDate"}
	modifiedAliases = []string{"modified", "modification_date", "ModDate"}
)

const compactTimestamp = "20060102150405"

// CreationDate returns the metadata-derived creation date, normalized to
// YYYY-MM-DD where possible. ok is false when no alias holds a value.
func CreationDate(metadata map[string]string) (string, bool) {
	return metadataDate(metadata, createdAliases)
}

// RevisionDate is the modification-date counterpart of CreationDate.
func RevisionDate(metadata map[string]string) (string, bool) {
	return metadataDate(metadata, modifiedAliases)
}

func metadataDate(metadata map[string]string, aliases []string) (string, bool) {
	for _, key := range aliases {
		value := metadata[key]
		if value == "" {
			continue
		}
		// PDF encodes dates as "D:YYYYMMDDHHMMSS..." with optional suffix.
		// Anything that fails the 14-digit parse is returned verbatim.
		if rest, found := strings.CutPrefix(value, "D:"); found {
			if len(rest) >= 14 {
				if t, err := time.Parse(compactTimestamp, rest[:14]); err == nil {
					return t.Format("2006-01-02"), true
				}
			}
			return value, true
		}
		return value, true
	}
	return "", false
}
