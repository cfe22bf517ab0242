package keywords

// Word classes used to filter keyword candidates. A "filler" word is any
// stop word, generic term or connector; fillers cannot anchor a phrase and
// are dropped as standalone terms.

// stopWords are common English function words.
var stopWords = wordSet(
	"a", "an", "and", "are", "as", "at", "be", "been", "but", "by", "can",
	"could", "do", "does", "for", "from", "had", "has", "have", "how", "if",
	"in", "into", "is", "it", "its", "may", "more", "most", "must", "not",
	"of", "on", "or", "our", "out", "over", "should", "such", "than", "that",
	"the", "their", "them", "then", "there", "these", "they", "this", "those",
	"through", "to", "under", "up", "us", "was", "we", "well", "were", "what",
	"when", "where", "which", "while", "who", "will", "with", "would", "you",
	"your",
)

// genericTerms are JD boilerplate that carries no signal on its own.
var genericTerms = wordSet(
	"ability", "background", "candidate", "candidates", "company",
	"environment", "etc", "excellent", "experience", "familiarity", "good",
	"great", "ideal", "including", "knowledge", "opportunity", "plus",
	"preferred", "proficiency", "required", "requirements", "responsibilities",
	"role", "skills", "solid", "strong", "team", "understanding", "work",
	"working", "years",
)

// connectorWords may appear inside a phrase but never at its edges.
var connectorWords = wordSet("and", "for", "in", "of", "on", "or", "to", "with")

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func isStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

func isGenericTerm(word string) bool {
	_, ok := genericTerms[word]
	return ok
}

func isConnectorWord(word string) bool {
	_, ok := connectorWords[word]
	return ok
}

// isFillerWord reports whether a token is too weak to stand alone or to
// anchor the edge of a phrase.
func isFillerWord(word string) bool {
	return isStopWord(word) || isGenericTerm(word) || isConnectorWord(word)
}
