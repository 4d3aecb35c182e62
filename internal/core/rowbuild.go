package core

import "strings"

// BulletCount is the fixed number of bullet columns on a card row.
const BulletCount = 3

// BulletTriple maps a feature list onto exactly three bullet slots.
// Longer lists truncate; shorter lists leave trailing slots empty.
func BulletTriple(features []string) [BulletCount]string {
	var bullets [BulletCount]string
	for i := 0; i < BulletCount && i < len(features); i++ {
		bullets[i] = strings.TrimSpace(features[i])
	}
	return bullets
}

// Derive computes all output for one record across the requested
// language codes. Shared fields (slug, filename, hashtags, bullets) are
// computed once; each language with a registered definition contributes
// one CardRow and one Caption. Unknown codes yield nothing.
func (d *Deriver) Derive(rec ProductRecord, langCodes []string) ([]CardRow, []Caption) {
	slug := Slugify(rec.Name)
	fileName := FileNameFor(slug)
	tags := d.Hashtags(rec.Keywords)
	tagLine := strings.Join(tags, " ")
	bullets := BulletTriple(rec.Features)
	price := d.PriceString(rec.Currency, rec.Price)
	colors := strings.Join(rec.Colors, ", ")
	sizes := strings.Join(rec.Sizes, ", ")

	features := rec.Features
	if len(features) > BulletCount {
		features = features[:BulletCount]
	}

	rows := make([]CardRow, 0, len(langCodes))
	captions := make([]Caption, 0, len(langCodes))

	for _, code := range langCodes {
		def, ok := Get(code)
		if !ok {
			continue
		}

		cta := d.ctaFor(def)
		in := CaptionInput{
			Name:     rec.Name,
			Tone:     rec.Tone,
			Audience: rec.Audience,
			Features: features,
			Emoji:    d.EmojiPair(rec.Tone),
			CTA:      cta,
			URL:      rec.URL,
			Hashtags: tagLine,
		}

		rows = append(rows, CardRow{
			Lang:     def.Code,
			Title:    def.Title(rec.Name),
			SubTitle: def.SubTitle(in),
			Price:    price,
			Bullet1:  bullets[0],
			Bullet2:  bullets[1],
			Bullet3:  bullets[2],
			Colors:   colors,
			Sizes:    sizes,
			CTA:      cta,
			Hashtags: tagLine,
			URL:      rec.URL,
			FileName: fileName,
			Slug:     slug,
		})
		captions = append(captions, Caption{
			Lang: def.Code,
			Slug: slug,
			Text: def.Caption(in),
		})
	}

	return rows, captions
}
