package lorem

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leforge/fakekit/pkg/corpus"
	"github.com/leforge/fakekit/pkg/rng"
)

// The canonical opener, split into words for Words and as a full clause for
// Paragraphs. classicParagraph is returned verbatim by Classic.
const (
	openerClause = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."

	classicParagraph = "Lorem ipsum dolor sit amet, consectetur adipiscing " +
		"elit, sed do eiusmod tempor incididunt ut labore et dolore magna " +
		"aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco " +
		"laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure " +
		"dolor in reprehenderit in voluptate velit esse cillum dolore eu " +
		"fugiat nulla pariatur. Excepteur sint occaecat cupidatat non " +
		"proident, sunt in culpa qui officia deserunt mollit anim id est " +
		"laborum."

	// A sentence longer than six words gets an interior comma when a draw
	// exceeds this threshold.
	commaThreshold = 0.6
)

var openerWords = []string{"lorem", "ipsum", "dolor", "sit", "amet"}

// Generator composes placeholder text from a deterministic random source.
type Generator struct {
	rnd   *rng.Rand
	theme string
	title cases.Caser
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithDefaultTheme sets the corpus used when an operation's options omit a
// theme. The zero default is the lorem corpus.
func WithDefaultTheme(theme string) Option {
	return func(g *Generator) {
		g.theme = theme
	}
}

// New returns a Generator drawing from rnd.
func New(rnd *rng.Rand, opts ...Option) *Generator {
	g := &Generator{
		rnd:   rnd,
		title: cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Words returns count words drawn independently from the theme corpus,
// joined by single spaces. With StartWithLorem on the default theme the
// fixed opener fills the first five positions and the result is still
// exactly count words.
func (g *Generator) Words(count int, opts *WordsOptions) string {
	o := opts.merge(g.theme)
	if count <= 0 {
		count = defaultWordCount
	}

	list := corpus.Words(o.Theme)
	out := make([]string, 0, count+len(openerWords))
	if o.StartWithLorem && corpus.IsDefault(o.Theme) {
		out = append(out, openerWords...)
	}
	for len(out) < count {
		w, _ := rng.Pick(g.rnd, list)
		out = append(out, w)
	}
	return strings.Join(out[:count], " ")
}

// Sentences returns count sentences joined by single spaces. Each sentence
// starts with a capitalized word, ends with a period, and may carry one
// interior comma when longer than six words.
func (g *Generator) Sentences(count int, opts *SentencesOptions) string {
	o := opts.merge(g.theme)
	if count <= 0 {
		count = defaultSentenceCount
	}

	list := corpus.Words(o.Theme)
	sentences := make([]string, count)
	for i := range sentences {
		sentences[i] = g.sentence(list, o.MinWords, o.MaxWords)
	}
	return strings.Join(sentences, " ")
}

// Paragraphs returns count paragraphs separated by blank lines. With
// StartWithLorem on the default theme the first paragraph opens with the
// classic clause.
func (g *Generator) Paragraphs(count int, opts *ParagraphsOptions) string {
	o := opts.merge(g.theme)
	if count <= 0 {
		count = defaultParagraphCount
	}

	list := corpus.Words(o.Theme)
	paragraphs := make([]string, count)
	for p := range paragraphs {
		n := g.rnd.IntRange(o.MinSentences, o.MaxSentences)
		sentences := make([]string, 0, n+1)
		if p == 0 && o.StartWithLorem && corpus.IsDefault(o.Theme) {
			sentences = append(sentences, openerClause)
		}
		for i := 0; i < n; i++ {
			sentences = append(sentences, g.sentence(list, defaultMinWords, defaultMaxWords))
		}
		paragraphs[p] = strings.Join(sentences, " ")
	}
	return strings.Join(paragraphs, "\n\n")
}

// Characters returns exactly count characters of sentence text, truncated at
// the boundary and stripped of trailing whitespace.
func (g *Generator) Characters(count int, opts *CharactersOptions) string {
	o := opts.merge(g.theme)
	if count <= 0 {
		count = defaultCharacterCount
	}

	list := corpus.Words(o.Theme)
	var b strings.Builder
	written := 0
	for written < count {
		s := g.sentence(list, defaultMinWords, defaultMaxWords)
		b.WriteString(s)
		b.WriteByte(' ')
		written += utf8.RuneCountInString(s) + 1
	}
	runes := []rune(b.String())
	return strings.TrimRight(string(runes[:count]), " ")
}

// Classic returns the canonical Lorem Ipsum paragraph. It consumes no
// randomness and is identical for every seed.
func (g *Generator) Classic() string {
	return classicParagraph
}

func (g *Generator) sentence(list []string, minWords, maxWords int) string {
	n := g.rnd.IntRange(minWords, maxWords)
	if n < 1 {
		n = 1
	}
	words := make([]string, n)
	for i := range words {
		words[i], _ = rng.Pick(g.rnd, list)
	}
	words[0] = g.title.String(words[0])
	if n > 6 && g.rnd.Float64() > commaThreshold {
		pos := g.rnd.IntRange(3, n-3)
		words[pos] += ","
	}
	return strings.Join(words, " ") + "."
}
