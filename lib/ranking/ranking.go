// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ranking scores option labels against a search query for the
// searchable prompts. Two matchers: [Fuzzy] (subsequence, rewarding
// compact, early, word-aligned matches) and [Substring] (literal,
// rewarding early matches). [Rank] turns matcher results into a
// sorted list with stable, case-insensitive tie-breaking.
//
// The matched indices are rune positions in the text; widgets use
// them to highlight the matching characters in rendered rows.
package ranking

import (
	"sort"
	"strings"
	"unicode"
)

// Scoring weights. The exact values are arbitrary; what matters is
// the ordering they induce: compact beats scattered, early beats
// late, word-boundary beats mid-word, and exact case nudges ties.
const (
	compactnessBase   = 100
	contiguousBonus   = 15
	earlyStartBase    = 20
	wordBoundaryBonus = 25
	substringBase     = 100
)

// Match is a successful match of a pattern against a text.
type Match struct {
	// Score orders matches; higher is better. Always ≥ 0.
	Score int

	// Indices are the rune positions in the text that matched, in
	// ascending order. Empty for an empty pattern.
	Indices []int
}

// separators are the characters treated as word boundaries for the
// boundary bonus.
const separators = " -_/."

// Fuzzy matches pattern as a case-insensitive subsequence of text,
// greedily taking each pattern character at its earliest position
// after the previous match. Returns ok=false when some character
// cannot be found in order. An empty pattern matches everything with
// score 0.
func Fuzzy(text, pattern string) (Match, bool) {
	if pattern == "" {
		return Match{}, true
	}

	textRunes := []rune(text)
	patternRunes := []rune(pattern)

	indices := make([]int, 0, len(patternRunes))
	caseMatches := 0
	searchFrom := 0
	for _, want := range patternRunes {
		found := -1
		for i := searchFrom; i < len(textRunes); i++ {
			if unicode.ToLower(textRunes[i]) == unicode.ToLower(want) {
				found = i
				break
			}
		}
		if found < 0 {
			return Match{}, false
		}
		if textRunes[found] == want {
			caseMatches++
		}
		indices = append(indices, found)
		searchFrom = found + 1
	}

	first := indices[0]
	last := indices[len(indices)-1]

	// Span compactness: a match spread over exactly the pattern
	// length scores the full base; every extra column costs one
	// point, floored at zero.
	score := compactnessBase - ((last - first + 1) - len(patternRunes))
	if score < 0 {
		score = 0
	}

	// Contiguity: each adjacent pair of matched positions.
	for i := 1; i < len(indices); i++ {
		if indices[i] == indices[i-1]+1 {
			score += contiguousBonus
		}
	}

	// Early start.
	score += earlyStartBase / (first + 1)

	// Word boundary: the match starts the text or follows a
	// separator.
	if first == 0 || strings.ContainsRune(separators, textRunes[first-1]) {
		score += wordBoundaryBonus
	}

	// Exact-case agreement, one point per character.
	score += caseMatches

	return Match{Score: score, Indices: indices}, true
}

// Substring matches pattern as a case-insensitive literal substring
// of text. The score decreases linearly with the match offset,
// floored at zero. An empty pattern matches everything with score 0.
func Substring(text, pattern string) (Match, bool) {
	if pattern == "" {
		return Match{}, true
	}

	textRunes := []rune(strings.ToLower(text))
	patternRunes := []rune(strings.ToLower(pattern))

	start := indexRunes(textRunes, patternRunes)
	if start < 0 {
		return Match{}, false
	}

	score := substringBase - start
	if score < 0 {
		score = 0
	}
	indices := make([]int, len(patternRunes))
	for i := range indices {
		indices[i] = start + i
	}
	return Match{Score: score, Indices: indices}, true
}

// indexRunes returns the first rune index where needle occurs in
// haystack, or -1. Rune-based so match indices line up with the
// indices Fuzzy produces.
func indexRunes(haystack, needle []rune) int {
	for start := 0; start+len(needle) <= len(haystack); start++ {
		matched := true
		for i, want := range needle {
			if haystack[start+i] != want {
				matched = false
				break
			}
		}
		if matched {
			return start
		}
	}
	return -1
}

// Matcher is the signature shared by [Fuzzy] and [Substring].
type Matcher func(text, pattern string) (Match, bool)

// Ranked is one matching label with its position in the original
// slice.
type Ranked struct {
	// Index is the label's index in the input slice, so callers can
	// map ranked rows back to their items.
	Index int
	Label string
	Match Match
}

// Rank matches every label against the pattern and returns the
// matches ordered by score descending, ties broken by
// case-insensitive label comparison. Labels that do not match are
// omitted.
func Rank(labels []string, pattern string, match Matcher) []Ranked {
	var ranked []Ranked
	for index, label := range labels {
		result, ok := match(label, pattern)
		if !ok {
			continue
		}
		ranked = append(ranked, Ranked{Index: index, Label: label, Match: result})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Match.Score != ranked[b].Match.Score {
			return ranked[a].Match.Score > ranked[b].Match.Score
		}
		return strings.ToLower(ranked[a].Label) < strings.ToLower(ranked[b].Label)
	})
	return ranked
}
