// Package catalog reads product catalogue CSV files and writes the
// generated card, caption, and manifest outputs.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cardsmith/cardsmith/internal/core"
)

// Defaults applied when a column or cell is missing. Best-effort by
// design: malformed rows degrade, they never fail.
const (
	DefaultName     = "Product"
	DefaultCurrency = "EUR"
	DefaultTone     = "friendly"
	DefaultAudience = "everyone"
)

// HeaderIndex maps lowercase column names to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are cleaned and lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(CleanCell(h))] = i
	}
	return idx
}

// CleanCell removes common CSV artifacts from a cell value:
// trims whitespace, strips Excel formula prefixes (="..."), and drops
// surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

// ReadFile parses a catalogue CSV into ProductRecords. The byte stream
// is wrapped for BOM skipping and UTF-8 sanitization before parsing.
// Returns the records and the number of bytes read.
func ReadFile(path string) ([]core.ProductRecord, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening catalogue: %w", err)
	}
	defer f.Close()

	var size int64
	if info, statErr := f.Stat(); statErr == nil {
		size = info.Size()
	}

	stream := core.WrapCatalogueReader(f, size)
	records, err := readRecords(stream)
	return records, stream.BytesRead, err
}

// readRecords parses records from an already-wrapped reader.
func readRecords(r io.Reader) ([]core.ProductRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // Ragged rows degrade to defaults, not errors

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := MakeHeaderIndex(header)

	var records []core.ProductRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		if isEmptyRow(row) {
			continue
		}
		records = append(records, recordFrom(row, idx))
	}
	return records, nil
}

// recordFrom builds a ProductRecord from one row, applying defaults for
// anything missing.
func recordFrom(row []string, idx HeaderIndex) core.ProductRecord {
	get := func(col string) string {
		pos, ok := idx[col]
		if !ok || pos >= len(row) {
			return ""
		}
		return CleanCell(row[pos])
	}

	return core.ProductRecord{
		Name:     orDefault(get("name"), DefaultName),
		Price:    get("price"),
		Currency: orDefault(get("currency"), DefaultCurrency),
		Colors:   SplitList(get("colors")),
		Sizes:    SplitList(get("sizes")),
		Keywords: SplitList(get("keywords")),
		Features: SplitList(get("features")),
		Audience: orDefault(get("audience"), DefaultAudience),
		Tone:     orDefault(get("tone"), DefaultTone),
		URL:      get("url"),
	}
}

// SplitList splits a delimited list cell on "|", ";", or ",", trimming
// entries and dropping empties.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "|", ",")
	s = strings.ReplaceAll(s, ";", ",")

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
