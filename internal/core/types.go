package core

// ProductRecord is one parsed catalogue row. All fields are free-text;
// the reader fills defaults for missing values, so consumers never see
// a zero Name, Currency, or Tone.
type ProductRecord struct {
	Name     string
	Price    string
	Currency string
	Colors   []string
	Sizes    []string
	Keywords []string
	Features []string
	Audience string
	Tone     string
	URL      string
}

// CardRow is one derived output row, written once to the card sheet.
// One ProductRecord yields one CardRow per requested language that has
// a registered definition.
type CardRow struct {
	Lang     string
	Title    string
	SubTitle string
	Price    string
	Bullet1  string
	Bullet2  string
	Bullet3  string
	Colors   string
	Sizes    string
	CTA      string
	Hashtags string
	URL      string
	FileName string
	Slug     string
}

// CardHeader lists the card sheet columns in serialization order.
var CardHeader = []string{
	"Lang", "Title", "SubTitle", "Price",
	"Bullet1", "Bullet2", "Bullet3",
	"Colors", "Sizes", "CTA", "Hashtags", "URL", "FileName", "Slug",
}

// Strings returns the row values in CardHeader order.
func (r CardRow) Strings() []string {
	return []string{
		r.Lang, r.Title, r.SubTitle, r.Price,
		r.Bullet1, r.Bullet2, r.Bullet3,
		r.Colors, r.Sizes, r.CTA, r.Hashtags, r.URL, r.FileName, r.Slug,
	}
}

// Caption is one derived social caption, written once to the captions sheet.
type Caption struct {
	Lang string
	Slug string
	Text string
}

// CaptionHeader lists the captions sheet columns in serialization order.
var CaptionHeader = []string{"lang", "slug", "caption"}

// CaptionInput carries the per-record fields a language template renders.
// The emoji pair and CTA are already resolved, so templates stay pure.
type CaptionInput struct {
	Name     string
	Tone     string
	Audience string
	Features []string
	Emoji    [2]string
	CTA      string
	URL      string
	Hashtags string
}

// TitleFunc renders a localized card title from the product name.
type TitleFunc func(name string) string

// SubTitleFunc renders a localized card subtitle.
type SubTitleFunc func(in CaptionInput) string

// CaptionFunc renders the multi-line social caption for one language.
type CaptionFunc func(in CaptionInput) string

// LanguageDefinition contains everything needed to produce copy for one
// language. Definitions are registered at init time from the langs package.
type LanguageDefinition struct {
	Code       string // ISO 639-1 code: "en", "fa"
	Label      string // English display name: "English"
	NativeName string // Self name: "فارسی"
	RTL        bool   // Right-to-left script
	CTA        string // Default call-to-action phrase

	Title    TitleFunc
	SubTitle SubTitleFunc
	Caption  CaptionFunc
}
