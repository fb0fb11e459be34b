// Package corpus holds the word lists that drive text generation.
//
// A corpus is a named, ordered list of lowercase words. Built-in themes
// ("lorem", "bacon", "hipster", "corporate", "tech", "pirate") are compiled
// in and immutable. Additional themes can be registered at run time, either
// programmatically via Register or from a YAML document via LoadYAML:
//
//	themes:
//	  - name: legal
//	    words: [whereas, hereinafter, notwithstanding]
//
// Lookup is case-insensitive and total: an unknown or empty theme name
// resolves to the default "lorem" corpus, so callers never need to handle a
// missing theme.
//
// Words are stored bare, without capitalization or punctuation; formatting is
// the text composition layer's job. Returned slices are shared, not copied —
// callers must treat them as read-only.
package corpus
