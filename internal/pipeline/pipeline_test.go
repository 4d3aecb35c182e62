package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cardsmith/cardsmith/internal/catalog"
	_ "github.com/cardsmith/cardsmith/internal/core/langs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCatalogue(t *testing.T) string {
	t.Helper()
	csv := "name,price,currency,colors,sizes,keywords,features,audience,tone,url\n" +
		"Summer Dress,19.99,USD,red|blue,S;M,summer|linen,breathable|washable|pockets|light,women,friendly,https://shop.example/d\n" +
		"Leather Bag,89,EUR,black,,leather,handmade,commuters,luxury,https://shop.example/b\n"
	path := filepath.Join(t.TempDir(), "catalogue.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("writing catalogue: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	input := writeCatalogue(t)
	outDir := t.TempDir()

	result, err := Run(context.Background(), Options{
		Input:  input,
		OutDir: outDir,
		Langs:  []string{"en", "fa"},
		Seed:   42,
	}, discardLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Records != 2 {
		t.Errorf("Records = %d, want 2", result.Records)
	}
	// Two records, two supported languages each
	if result.Rows != 4 {
		t.Errorf("Rows = %d, want 4", result.Rows)
	}
	if result.Captions != 4 {
		t.Errorf("Captions = %d, want 4", result.Captions)
	}
	if result.RunID == "" {
		t.Error("RunID is empty")
	}

	for _, name := range []string{catalog.CardsFileName, catalog.CaptionsFileName, catalog.ManifestFileName} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}
}

func TestRun_UnknownLanguage(t *testing.T) {
	input := writeCatalogue(t)

	result, err := Run(context.Background(), Options{
		Input:  input,
		OutDir: t.TempDir(),
		Langs:  []string{"en", "xx"},
		Seed:   42,
	}, discardLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// xx yields no rows, silently
	if result.Rows != 2 {
		t.Errorf("Rows = %d, want 2", result.Rows)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "xx" {
		t.Errorf("Skipped = %v, want [xx]", result.Skipped)
	}
}

func TestRun_Reproducible(t *testing.T) {
	input := writeCatalogue(t)
	dirA, dirB := t.TempDir(), t.TempDir()

	for _, dir := range []string{dirA, dirB} {
		if _, err := Run(context.Background(), Options{
			Input:  input,
			OutDir: dir,
			Langs:  []string{"en", "fa"},
			Seed:   7,
		}, discardLogger()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	}

	for _, name := range []string{catalog.CardsFileName, catalog.CaptionsFileName} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("%s differs between identical seeded runs", name)
		}
	}
}

func TestRun_MissingInput(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Input:  filepath.Join(t.TempDir(), "nope.csv"),
		OutDir: t.TempDir(),
		Langs:  []string{"en"},
	}, discardLogger())
	if err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{
		Input:  writeCatalogue(t),
		OutDir: t.TempDir(),
		Langs:  []string{"en"},
	}, discardLogger())
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestRun_PackOverrides(t *testing.T) {
	input := writeCatalogue(t)
	packPath := filepath.Join(t.TempDir(), "pack.yaml")
	packYAML := "cta:\n  en: \"Grab yours today!\"\n"
	if err := os.WriteFile(packPath, []byte(packYAML), 0644); err != nil {
		t.Fatal(err)
	}

	outDir := t.TempDir()
	if _, err := Run(context.Background(), Options{
		Input:    input,
		OutDir:   outDir,
		Langs:    []string{"en"},
		Seed:     5,
		PackPath: packPath,
	}, discardLogger()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, catalog.CardsFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Grab yours today!") {
		t.Error("pack CTA override not applied to card sheet")
	}
}
