package core

import (
	"math/rand"
	"strings"
	"time"
)

// DefaultMaxTags is the hashtag cap applied when Options.MaxTags is zero.
const DefaultMaxTags = 18

// Options configures a Deriver. The zero value is usable: a time-seeded
// random source and the built-in lookup tables.
type Options struct {
	// Seed for the random source. Zero means seed from the clock;
	// pass a fixed value for reproducible output.
	Seed int64

	// MaxTags caps the hashtag list per record (default DefaultMaxTags).
	MaxTags int

	// ExtraTags extends the built-in generic hashtag pool.
	ExtraTags []string

	// CTAOverrides replaces the registered CTA per language code.
	CTAOverrides map[string]string

	// EmojiOverrides replaces the emoji pool per tone.
	EmojiOverrides map[string][]string

	// SymbolOverrides replaces or adds currency symbols (prefix position).
	SymbolOverrides map[string]string
}

// Deriver computes all derived copy fields for catalogue records.
// It owns the random source, so two Derivers built with the same seed
// produce identical output for identical input.
type Deriver struct {
	rng        *rand.Rand
	maxTags    int
	bigPool    []string
	ctas       map[string]string
	emojiPools map[string][]string
	symbols    map[string]currencyInfo
}

// NewDeriver builds a Deriver from options, cloning the built-in tables
// so overrides never leak between instances.
func NewDeriver(opts Options) *Deriver {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	maxTags := opts.MaxTags
	if maxTags <= 0 {
		maxTags = DefaultMaxTags
	}

	d := &Deriver{
		rng:        rand.New(rand.NewSource(seed)),
		maxTags:    maxTags,
		bigPool:    append(append([]string(nil), genericHashtags...), opts.ExtraTags...),
		ctas:       make(map[string]string, len(opts.CTAOverrides)),
		emojiPools: make(map[string][]string, len(emojiPools)),
		symbols:    make(map[string]currencyInfo, len(currencySymbols)),
	}

	for tone, pool := range emojiPools {
		d.emojiPools[tone] = pool
	}
	for tone, pool := range opts.EmojiOverrides {
		if len(pool) > 0 {
			d.emojiPools[strings.ToLower(tone)] = pool
		}
	}

	for code, info := range currencySymbols {
		d.symbols[code] = info
	}
	for code, symbol := range opts.SymbolOverrides {
		if symbol != "" {
			d.symbols[strings.ToUpper(code)] = currencyInfo{Symbol: symbol}
		}
	}

	for code, cta := range opts.CTAOverrides {
		if cta != "" {
			d.ctas[strings.ToLower(code)] = cta
		}
	}

	return d
}

// ctaFor returns the CTA for a language, preferring pack overrides.
func (d *Deriver) ctaFor(def LanguageDefinition) string {
	if cta, ok := d.ctas[def.Code]; ok {
		return cta
	}
	return def.CTA
}
