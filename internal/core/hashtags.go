package core

// hashtags.go builds the per-record hashtag mix.
//
// Three pools feed the mix:
//   - big:    generic high-volume shopping tags (built-in + pack extras)
//   - medium: one tag per keyword ("summer dress" → #summerdress)
//   - niche:  keyword tags with long-tail suffixes (#summerdresslove)
//
// Roughly a third of the budget goes to each pool, with the remainder and
// any shortfall from the keyword pools backfilled from the big pool. Tags
// are deduplicated case-insensitively and the list never exceeds the cap.

import "strings"

// genericHashtags is the built-in big pool.
var genericHashtags = []string{
	"#shopping", "#style", "#instagood", "#fashion", "#shoplocal",
	"#newarrival", "#musthave", "#trending", "#sale", "#giftideas",
	"#onlineshopping", "#smallbusiness", "#dailydeal", "#handpicked",
	"#shopnow", "#instashop",
}

// nicheSuffixes turn a keyword tag into its long-tail variants.
var nicheSuffixes = []string{"love", "life", "style", "daily", "gram"}

// Hashtags builds the tag list for a record's keywords.
// Output length never exceeds the configured cap and contains no
// duplicates. Sampling is without replacement from each pool.
func (d *Deriver) Hashtags(keywords []string) []string {
	medium := make([]string, 0, len(keywords))
	niche := make([]string, 0, len(keywords)*len(nicheSuffixes))
	for _, kw := range keywords {
		tag := compactTag(kw)
		if tag == "" {
			continue
		}
		medium = append(medium, "#"+tag)
		for _, suffix := range nicheSuffixes {
			niche = append(niche, "#"+tag+suffix)
		}
	}

	third := d.maxTags / 3

	seen := make(map[string]bool, d.maxTags)
	out := make([]string, 0, d.maxTags)
	out = d.sampleInto(out, seen, medium, third)
	out = d.sampleInto(out, seen, niche, third)
	// Big pool fills its own share plus whatever the keyword pools
	// could not supply.
	out = d.sampleInto(out, seen, d.bigPool, d.maxTags-len(out))

	return out
}

// sampleInto draws up to n tags from pool without replacement, skipping
// tags already seen, and appends them to out.
func (d *Deriver) sampleInto(out []string, seen map[string]bool, pool []string, n int) []string {
	if n <= 0 || len(pool) == 0 {
		return out
	}

	shuffled := append([]string(nil), pool...)
	d.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	taken := 0
	for _, tag := range shuffled {
		if taken >= n {
			break
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
		taken++
	}
	return out
}
