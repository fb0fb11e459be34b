package lorem

// Operation defaults, applied when a count is non-positive or an option is
// left at its zero value.
const (
	defaultWordCount      = 10
	defaultSentenceCount  = 3
	defaultParagraphCount = 3
	defaultCharacterCount = 100

	defaultMinWords     = 8
	defaultMaxWords     = 15
	defaultMinSentences = 4
	defaultMaxSentences = 8
)

// WordsOptions configures Generator.Words.
type WordsOptions struct {
	// Theme selects the corpus. Empty or unknown falls back to the
	// generator's default theme, then to the lorem corpus.
	Theme string

	// StartWithLorem prepends the classic five-word opener before filling
	// to the requested count. Only honored on the default theme.
	StartWithLorem bool
}

// SentencesOptions configures Generator.Sentences.
type SentencesOptions struct {
	Theme string

	// MinWords and MaxWords bound the per-sentence word count.
	// Defaults: 8 and 15.
	MinWords int
	MaxWords int
}

// ParagraphsOptions configures Generator.Paragraphs.
type ParagraphsOptions struct {
	Theme string

	// MinSentences and MaxSentences bound the per-paragraph sentence count.
	// Defaults: 4 and 8.
	MinSentences int
	MaxSentences int

	// StartWithLorem prepends the classic opening clause to the first
	// paragraph. Only honored on the default theme.
	StartWithLorem bool
}

// CharactersOptions configures Generator.Characters.
type CharactersOptions struct {
	Theme string
}

func (o *WordsOptions) merge(defaultTheme string) WordsOptions {
	out := WordsOptions{Theme: defaultTheme}
	if o == nil {
		return out
	}
	if o.Theme != "" {
		out.Theme = o.Theme
	}
	out.StartWithLorem = o.StartWithLorem
	return out
}

func (o *SentencesOptions) merge(defaultTheme string) SentencesOptions {
	out := SentencesOptions{
		Theme:    defaultTheme,
		MinWords: defaultMinWords,
		MaxWords: defaultMaxWords,
	}
	if o == nil {
		return out
	}
	if o.Theme != "" {
		out.Theme = o.Theme
	}
	if o.MinWords > 0 {
		out.MinWords = o.MinWords
	}
	if o.MaxWords > 0 {
		out.MaxWords = o.MaxWords
	}
	return out
}

func (o *ParagraphsOptions) merge(defaultTheme string) ParagraphsOptions {
	out := ParagraphsOptions{
		Theme:        defaultTheme,
		MinSentences: defaultMinSentences,
		MaxSentences: defaultMaxSentences,
	}
	if o == nil {
		return out
	}
	if o.Theme != "" {
		out.Theme = o.Theme
	}
	if o.MinSentences > 0 {
		out.MinSentences = o.MinSentences
	}
	if o.MaxSentences > 0 {
		out.MaxSentences = o.MaxSentences
	}
	out.StartWithLorem = o.StartWithLorem
	return out
}

func (o *CharactersOptions) merge(defaultTheme string) CharactersOptions {
	out := CharactersOptions{Theme: defaultTheme}
	if o == nil {
		return out
	}
	if o.Theme != "" {
		out.Theme = o.Theme
	}
	return out
}
