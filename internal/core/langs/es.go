package langs

import (
	"strings"

	"github.com/cardsmith/cardsmith/internal/core"
)

func init() {
	core.Register(core.LanguageDefinition{
		Code:       "es",
		Label:      "Spanish",
		NativeName: "Español",
		CTA:        "¡Consíguelo ahora!",
		Title: func(name string) string {
			return name
		},
		SubTitle: func(in core.CaptionInput) string {
			return "Hecho para " + in.Audience
		},
		Caption: captionES,
	})
}

func captionES(in core.CaptionInput) string {
	var b strings.Builder
	b.WriteString(in.Emoji[0] + " " + in.Name + " " + in.Emoji[1] + "\n\n")
	b.WriteString("Hecho para " + in.Audience + ".\n")
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
