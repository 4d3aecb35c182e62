// Package core provides the copy-generation logic for product cards.
//
// This package is the heart of the generator, containing all domain logic
// independent of the CLI. It can be used by commands, pipelines, or tests
// without modification.
//
// # Language Registry
//
// Languages are registered at init time using [Register]. Each
// [LanguageDefinition] contains everything needed to produce copy for one
// language:
//
//	core.Register(core.LanguageDefinition{
//	    Code:  "en",
//	    Label: "English",
//	    CTA:   "Shop now",
//	    Title: func(name string) string { return name },
//	    ...
//	})
//
// The langs subpackage registers the shipped languages; importing it for
// side effects is enough:
//
//	import _ "github.com/cardsmith/cardsmith/internal/core/langs"
//
// # Derivation
//
// A [Deriver] owns the random source and the lookup tables (hashtag
// pools, emoji pools, currency symbols), optionally overridden by a copy
// pack. [Deriver.Derive] computes shared fields once per record and then
// builds one [CardRow] and one [Caption] per requested language. Two
// Derivers built with the same [Options.Seed] produce identical output
// for identical input, which is what makes re-runs byte-reproducible.
//
// # Streaming
//
// Catalogue exports arrive with BOMs and broken encodings. The readers in
// streaming.go clean the byte stream before encoding/csv ever sees it;
// wrap file readers with [WrapCatalogueReader].
package core
