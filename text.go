package siteaudit

import (
	"regexp"
	"strings"
)

// Text heuristics shared by the scoring functions. All of them operate on
// plain text or markdown (the output of a Converter) and are deterministic.

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
	statisticRe     = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent)|\$\s*\d|\b\d{3,}\b`)
	definitionRe    = regexp.MustCompile(`(?i)\b(?:is defined as|definition of|known as|refers to)\b`)
	answerRe        = regexp.MustCompile(`(?i)\b(?:is|are|was|were|means)\b`)
	yesNoRe         = regexp.MustCompile(`(?i)^\s*(?:yes|no)\b`)
	numberedStepRe  = regexp.MustCompile(`(?m)^\s*(?:\d+[.)]|Step\s+\d+)\s`)
	bulletRe        = regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)
	tableRowRe      = regexp.MustCompile(`(?m)^\s*\|.*\|\s*$`)
	tableRuleRe     = regexp.MustCompile(`(?m)^\s*\|?[\s:|-]*-{3,}[\s:|-]*\|?\s*$`)
	htmlTableRe     = regexp.MustCompile(`(?i)<table\b`)
	quotableWordRe  = regexp.MustCompile(`(?i)\b(?:most|best|key|essential|important|critical|significant)\b`)
	digitRe         = regexp.MustCompile(`\d`)
	ctaRe           = regexp.MustCompile(`(?i)\b(?:contact us|get started|learn more|sign up|book now|call today|request a quote|subscribe)\b`)
	directAddressRe = regexp.MustCompile(`(?i)\byour?\b`)
	nonWordRe       = regexp.MustCompile(`[^a-zA-Z]+`)
)

// splitParagraphs splits text into non-empty paragraphs on blank lines.
func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitSentences splits text into non-empty sentences on terminal
// punctuation. Markdown heading markers survive as sentence prefixes, which
// is fine for counting purposes.
func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitWords splits text into whitespace-delimited words.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// countSyllables estimates syllables in a word by counting vowel groups,
// with a silent-e adjustment. Crude but stable, which is all a reading-ease
// band needs.
func countSyllables(word string) int {
	word = strings.ToLower(nonWordRe.ReplaceAllString(word, ""))
	if word == "" {
		return 0
	}
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// hasDirectAnswer reports whether text contains a declarative answer
// sentence, and whether one appears in the first paragraph.
func hasDirectAnswer(text string) (detectable, firstParagraph bool) {
	paragraphs := splitParagraphs(text)
	for i, p := range paragraphs {
		for _, s := range splitSentences(p) {
			if answerRe.MatchString(s) || yesNoRe.MatchString(s) {
				detectable = true
				if i == 0 {
					firstParagraph = true
				}
				break
			}
		}
		if detectable && (firstParagraph || i > 0) {
			break
		}
	}
	return detectable, firstParagraph
}

// hasStatistics reports whether text contains numeric evidence such as
// percentages, dollar amounts, or large figures.
func hasStatistics(text string) bool {
	return statisticRe.MatchString(text)
}

// countQuotableStatements counts standalone sentences an answer engine
// could lift verbatim: mid-length sentences carrying a figure or a
// definitive qualifier.
func countQuotableStatements(text string) int {
	count := 0
	for _, s := range splitSentences(text) {
		if len(s) < 40 || len(s) > 200 {
			continue
		}
		if digitRe.MatchString(s) || quotableWordRe.MatchString(s) {
			count++
		}
	}
	return count
}

// definesKeyTerms reports whether text explicitly defines terminology.
func definesKeyTerms(text string) bool {
	return definitionRe.MatchString(text)
}

// countFAQItems counts question lines: lines of at least three words ending
// in a question mark. Two or more constitute an FAQ block.
func countFAQItems(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#*- "))
		if strings.HasSuffix(line, "?") && len(strings.Fields(line)) >= 3 {
			count++
		}
	}
	return count
}

// hasFAQBlock reports whether text contains an FAQ-style block.
func hasFAQBlock(text string) bool {
	return countFAQItems(text) >= 2
}

// hasHowToSteps reports whether text contains two or more numbered steps.
func hasHowToSteps(text string) bool {
	return len(numberedStepRe.FindAllString(text, 2)) >= 2
}

// hasDataTable reports whether text contains a markdown table (a pipe row
// followed by a rule row) or a literal HTML table.
func hasDataTable(text string) bool {
	if htmlTableRe.MatchString(text) {
		return true
	}
	return tableRowRe.MatchString(text) && tableRuleRe.MatchString(text)
}

// countOccurrences counts case-insensitive, whole-phrase occurrences of
// needle in text. An empty needle counts zero.
func countOccurrences(text, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(needle))
}
