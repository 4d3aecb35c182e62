// Package langs registers the shipped language definitions.
// Import it for side effects:
//
//	import _ "github.com/cardsmith/cardsmith/internal/core/langs"
package langs

import (
	"strings"

	"github.com/cardsmith/cardsmith/internal/core"
)

func init() {
	core.Register(core.LanguageDefinition{
		Code:       "en",
		Label:      "English",
		NativeName: "English",
		CTA:        "Shop now — link in bio!",
		Title: func(name string) string {
			return name
		},
		SubTitle: func(in core.CaptionInput) string {
			return "Made for " + in.Audience
		},
		Caption: captionEN,
	})
}

func captionEN(in core.CaptionInput) string {
	var b strings.Builder
	b.WriteString(in.Emoji[0] + " " + in.Name + " " + in.Emoji[1] + "\n\n")
	b.WriteString("Made for " + in.Audience + ".\n")
	for _, f := range in.Features {
		b.WriteString("• " + f + "\n")
	}
	b.WriteString("\n" + in.CTA + "\n")
	if in.URL != "" {
		b.WriteString(in.URL + "\n")
	}
	if in.Hashtags != "" {
		b.WriteString("\n" + in.Hashtags)
	}
	return b.String()
}
