package lorem

// Unit selects which composition level Themed dispatches to.
type Unit int

const (
	// UnitParagraphs is the default unit for themed generation.
	UnitParagraphs Unit = iota
	UnitWords
	UnitSentences
)

// Themed generates count units of text from the named theme corpus,
// dispatching to Words, Sentences, or Paragraphs. An unrecognized unit
// falls back to paragraphs.
func (g *Generator) Themed(theme string, count int, unit Unit) string {
	switch unit {
	case UnitWords:
		return g.Words(count, &WordsOptions{Theme: theme})
	case UnitSentences:
		return g.Sentences(count, &SentencesOptions{Theme: theme})
	default:
		return g.Paragraphs(count, &ParagraphsOptions{Theme: theme})
	}
}

// Theme shortcuts, thin wrappers over Themed.

func (g *Generator) Bacon(count int, unit Unit) string {
	return g.Themed("bacon", count, unit)
}

func (g *Generator) Hipster(count int, unit Unit) string {
	return g.Themed("hipster", count, unit)
}

func (g *Generator) Corporate(count int, unit Unit) string {
	return g.Themed("corporate", count, unit)
}

func (g *Generator) Tech(count int, unit Unit) string {
	return g.Themed("tech", count, unit)
}

func (g *Generator) Pirate(count int, unit Unit) string {
	return g.Themed("pirate", count, unit)
}
