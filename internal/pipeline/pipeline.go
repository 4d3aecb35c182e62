// Package pipeline wires the catalogue reader, the deriver, and the
// writers into one forward pass: read → derive → write.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardsmith/cardsmith/internal/catalog"
	"github.com/cardsmith/cardsmith/internal/core"
	"github.com/cardsmith/cardsmith/internal/pack"
)

// ContextCheckInterval is how often (in records) to check for context
// cancellation. Records are cheap to derive, so a coarse interval keeps
// the hot loop branch-light.
var ContextCheckInterval = 100

// Options configures one generation run.
type Options struct {
	Input    string   // Catalogue CSV path
	OutDir   string   // Output directory, created if absent
	Langs    []string // Requested language codes, in output order
	MaxTags  int      // Hashtag cap per record
	Seed     int64    // RNG seed (0 = time-based)
	PackPath string   // Optional copy-pack YAML
}

// Result summarizes a completed run.
type Result struct {
	RunID    string
	Records  int
	Rows     int
	Captions int
	Skipped  []string // Requested codes with no registered language
	Duration time.Duration
}

// Run executes one generation pass. Field-level problems in the input
// degrade silently; only file-system and pack errors abort the run.
func Run(ctx context.Context, opts Options, log *slog.Logger) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log = log.With("run_id", runID)

	derOpts := core.Options{
		Seed:    opts.Seed,
		MaxTags: opts.MaxTags,
	}
	if opts.PackPath != "" {
		p, err := pack.Load(opts.PackPath)
		if err != nil {
			return nil, err
		}
		p.Apply(&derOpts)
		log.Debug("copy pack applied", "path", opts.PackPath)
	}

	var skipped []string
	for _, code := range opts.Langs {
		if _, ok := core.Get(code); !ok {
			skipped = append(skipped, code)
			log.Warn("unknown language code, no rows will be emitted for it", "lang", code)
		}
	}

	records, bytesRead, err := catalog.ReadFile(opts.Input)
	if err != nil {
		return nil, err
	}
	log.Info("catalogue read", "records", len(records), "bytes", bytesRead)

	deriver := core.NewDeriver(derOpts)
	var rows []core.CardRow
	var captions []core.Caption
	for i, rec := range records {
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("run cancelled at record %d: %w", i+1, err)
			}
		}
		r, c := deriver.Derive(rec, opts.Langs)
		rows = append(rows, r...)
		captions = append(captions, c...)
	}

	writer, err := catalog.NewWriter(opts.OutDir)
	if err != nil {
		return nil, err
	}
	if err := writer.WriteCards(rows); err != nil {
		return nil, err
	}
	if err := writer.WriteCaptions(captions); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:    runID,
		Records:  len(records),
		Rows:     len(rows),
		Captions: len(captions),
		Skipped:  skipped,
		Duration: time.Since(start),
	}

	manifest := catalog.Manifest{
		RunID:     runID,
		Input:     opts.Input,
		Seed:      opts.Seed,
		Languages: opts.Langs,
		Records:   result.Records,
		Rows:      result.Rows,
		Captions:  result.Captions,
		BytesRead: bytesRead,
		Duration:  result.Duration.String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := writer.WriteManifest(manifest); err != nil {
		return nil, err
	}

	log.Info("run complete",
		"records", result.Records,
		"rows", result.Rows,
		"captions", result.Captions,
		"duration", result.Duration,
	)
	return result, nil
}
