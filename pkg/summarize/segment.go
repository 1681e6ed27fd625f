package summarize

import "strings"

// RuleSegmenter is a rule-based Segmenter. Sentence boundaries are runs of
// terminal punctuation ('.', '!', '?') followed by whitespace or end of
// text; words are whitespace-separated tokens. OCR word streams rarely
// retain punctuation, so a whole stream often segments into a single unit.
type RuleSegmenter struct{}

// Sentences splits text into sentence-like units on terminal punctuation.
func (RuleSegmenter) Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0

	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}

		// Absorb the full punctuation run ("...", "?!")
		end := i
		for end+1 < len(text) && isTerminal(text[end+1]) {
			end++
		}

		// Only a boundary when followed by whitespace or end of text
		if end+1 < len(text) && text[end+1] != ' ' {
			i = end
			continue
		}

		if sentence := strings.TrimSpace(text[start : end+1]); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end + 1
		i = end
	}

	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// Words splits text into whitespace-separated tokens.
func (RuleSegmenter) Words(text string) []string {
	return strings.Fields(text)
}

func isTerminal(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
