// Package pack loads optional copy-pack YAML files that override the
// built-in CTA, hashtag, emoji, and currency tables.
//
// A pack is best-effort layering: keys that are absent keep their
// built-in values, and an empty file is a valid no-op pack.
//
//	cta:
//	  en: "Grab yours today!"
//	hashtags:
//	  - "#boutique"
//	emoji:
//	  luxury: ["🤍", "🫧"]
//	currencies:
//	  CHF: "Fr."
package pack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cardsmith/cardsmith/internal/core"
)

// Pack holds the override tables parsed from YAML.
type Pack struct {
	CTA        map[string]string   `yaml:"cta"`        // language code → CTA phrase
	Hashtags   []string            `yaml:"hashtags"`   // extra generic-pool tags
	Emoji      map[string][]string `yaml:"emoji"`      // tone → emoji pool
	Currencies map[string]string   `yaml:"currencies"` // currency code → prefix symbol
}

// Load reads and parses a pack file.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pack: %w", err)
	}

	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing pack %s: %w", path, err)
	}
	return &p, nil
}

// Apply merges the pack's overrides into deriver options.
// A nil pack is a no-op.
func (p *Pack) Apply(opts *core.Options) {
	if p == nil {
		return
	}
	opts.ExtraTags = append(opts.ExtraTags, p.Hashtags...)
	if len(p.CTA) > 0 {
		opts.CTAOverrides = p.CTA
	}
	if len(p.Emoji) > 0 {
		opts.EmojiOverrides = p.Emoji
	}
	if len(p.Currencies) > 0 {
		opts.SymbolOverrides = p.Currencies
	}
}
