package siteaudit

import "math"

// ReadabilityBreakdown details how the readability sub-score was derived.
type ReadabilityBreakdown struct {
	FleschScore      float64 `json:"fleschScore"`
	AvgSentenceWords float64 `json:"avgSentenceWords"`
	LongParagraphs   int     `json:"longParagraphs"`
}

// longParagraphWords is the paragraph length beyond which readers skim.
const longParagraphWords = 150

// ScoreReadability computes a 0-100 readability sub-score: Flesch reading
// ease (clamped to the score range) with a penalty for wall-of-text
// paragraphs. Empty content scores zero.
func ScoreReadability(text string) (int, ReadabilityBreakdown) {
	var b ReadabilityBreakdown

	words := splitWords(text)
	sentences := splitSentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return 0, b
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))
	b.FleschScore = 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	b.AvgSentenceWords = wordsPerSentence

	for _, p := range splitParagraphs(text) {
		if len(splitWords(p)) > longParagraphWords {
			b.LongParagraphs++
		}
	}

	score := clampScore(int(math.Round(b.FleschScore)))
	penalty := capInt(b.LongParagraphs*5, 15)
	return clampScore(score - penalty), b
}
