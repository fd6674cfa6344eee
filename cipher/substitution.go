// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package cipher

import (
	"sort"
	"strings"
	"unicode"
)

// englishByFrequency lists the English alphabet from most to least
// frequent letter.
var englishByFrequency = []rune{
	'e', 't', 'a', 'o', 'i', 'n', 's', 'h', 'r', 'd', 'l', 'c', 'u',
	'm', 'w', 'f', 'g', 'y', 'p', 'b', 'v', 'k', 'j', 'x', 'q', 'z',
}

// SubstitutionGuess attempts a monoalphabetic substitution decode by
// aligning the text's letter-frequency ranking with English letter
// frequencies. It is a starting point, not a solver; known supplies
// confirmed mappings (ciphertext letter → plaintext letter, lower case)
// that override the statistical guess.
func SubstitutionGuess(text string, known map[rune]rune) string {
	if text == "" {
		return ""
	}

	freq := Frequencies(text)

	ranked := make([]rune, 0, len(freq))
	for r := range freq {
		ranked = append(ranked, r)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if freq[ranked[i]] != freq[ranked[j]] {
			return freq[ranked[i]] > freq[ranked[j]]
		}

		return ranked[i] < ranked[j]
	})

	mapping := make(map[rune]rune, len(ranked))
	for i, r := range ranked {
		if i < len(englishByFrequency) {
			mapping[r] = englishByFrequency[i]
		}
	}

	for from, to := range known {
		mapping[from] = to
	}

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		lower := unicode.ToLower(r)

		mapped, ok := mapping[lower]
		if !ok {
			b.WriteRune(r)

			continue
		}

		if unicode.IsUpper(r) {
			mapped = unicode.ToUpper(mapped)
		}

		b.WriteRune(mapped)
	}

	return b.String()
}
