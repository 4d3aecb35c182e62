package catalog

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cardsmith/cardsmith/internal/core"
)

func testRows() []core.CardRow {
	return []core.CardRow{
		{
			Lang: "en", Title: "Summer Dress", SubTitle: "Made for women",
			Price: "$19.99", Bullet1: "breathable", Colors: "red, blue",
			CTA: "Shop now", Hashtags: "#summer #linen",
			URL: "https://shop.example/d", FileName: "summer-dress.png",
			Slug: "summer-dress",
		},
	}
}

func TestWriter_Cards(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if err := w.WriteCards(testRows()); err != nil {
		t.Fatalf("WriteCards() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, CardsFileName))
	if err != nil {
		t.Fatalf("opening cards sheet: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing cards sheet: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(records))
	}
	if records[0][0] != "Lang" || records[1][0] != "en" {
		t.Errorf("unexpected sheet content: %v", records)
	}
	if len(records[1]) != len(core.CardHeader) {
		t.Errorf("row has %d columns, header has %d", len(records[1]), len(core.CardHeader))
	}
}

func TestWriter_Captions(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	captions := []core.Caption{
		{Lang: "en", Slug: "summer-dress", Text: "line one\nline two\n\n#summer"},
	}
	if err := w.WriteCaptions(captions); err != nil {
		t.Fatalf("WriteCaptions() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, CaptionsFileName))
	if err != nil {
		t.Fatalf("opening captions sheet: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing captions sheet: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(records))
	}

	// Multi-line captions survive CSV quoting
	if records[1][2] != captions[0].Text {
		t.Errorf("caption = %q, want %q", records[1][2], captions[0].Text)
	}
}

func TestWriter_Manifest(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	m := Manifest{
		RunID:     "run-1",
		Input:     "catalogue.csv",
		Seed:      42,
		Languages: []string{"en", "fa"},
		Records:   3,
		Rows:      6,
		Captions:  6,
		Duration:  "12ms",
		CreatedAt: time.Now().UTC(),
	}
	if err := w.WriteManifest(m); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}

	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if got.RunID != m.RunID || got.Rows != m.Rows || got.Seed != m.Seed {
		t.Errorf("manifest round-trip mismatch: %+v", got)
	}
}

func TestNewWriter_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if _, err := NewWriter(dir); err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestWriter_CardsDeterministic(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	for _, dir := range []string{dirA, dirB} {
		w, err := NewWriter(dir)
		if err != nil {
			t.Fatalf("NewWriter() error = %v", err)
		}
		if err := w.WriteCards(testRows()); err != nil {
			t.Fatalf("WriteCards() error = %v", err)
		}
	}

	a, err := os.ReadFile(filepath.Join(dirA, CardsFileName))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dirB, CardsFileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("identical rows produced different sheets")
	}
}
