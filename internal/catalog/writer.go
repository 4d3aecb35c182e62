package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cardsmith/cardsmith/internal/core"
)

// Output file names inside the output directory.
const (
	CardsFileName    = "cards.csv"
	CaptionsFileName = "captions.csv"
	ManifestFileName = "manifest.json"
)

// Manifest records what a generation run produced, so a sheet can be
// traced back to its input, seed, and run ID.
type Manifest struct {
	RunID     string    `json:"runId"`
	Input     string    `json:"input"`
	Seed      int64     `json:"seed"`
	Languages []string  `json:"languages"`
	Records   int       `json:"records"`
	Rows      int       `json:"rows"`
	Captions  int       `json:"captions"`
	BytesRead int64     `json:"bytesRead"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

// Writer emits run outputs into a single directory.
type Writer struct {
	outDir string
}

// NewWriter creates the output directory if absent and returns a Writer.
func NewWriter(outDir string) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	return &Writer{outDir: outDir}, nil
}

// WriteCards writes the card sheet (header + one line per CardRow).
func (w *Writer) WriteCards(rows []core.CardRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, core.CardHeader)
	for _, row := range rows {
		records = append(records, row.Strings())
	}
	return w.writeCSV(CardsFileName, records)
}

// WriteCaptions writes the captions sheet.
func (w *Writer) WriteCaptions(captions []core.Caption) error {
	records := make([][]string, 0, len(captions)+1)
	records = append(records, core.CaptionHeader)
	for _, c := range captions {
		records = append(records, []string{c.Lang, c.Slug, c.Text})
	}
	return w.writeCSV(CaptionsFileName, records)
}

// WriteManifest writes the run manifest as indented JSON.
func (w *Writer) WriteManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	path := filepath.Join(w.outDir, ManifestFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", ManifestFileName, err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, records [][]string) error {
	path := filepath.Join(w.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
