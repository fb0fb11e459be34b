// Package lorem composes placeholder text from themed word corpora.
//
// A Generator is bound to a single rng.Rand and layers words into sentences,
// sentences into paragraphs, and paragraphs into documents with simple
// formatting rules: the first word of a sentence is capitalized, sentences
// end with a period, longer sentences occasionally carry one interior comma,
// and paragraphs are separated by a blank line. No further grammar is
// attempted.
//
// Every operation takes a count plus an optional options struct; a nil
// options pointer means all defaults. With an explicit seed the output is
// fully reproducible:
//
//	g := lorem.New(rng.New(42))
//	text := g.Paragraphs(2, &lorem.ParagraphsOptions{StartWithLorem: true})
//
// A Generator is not safe for concurrent use because the underlying Rand is
// not; give each goroutine its own Generator for reproducible output.
package lorem
