// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

// Package puzzle holds generic geocaching puzzle helpers that are neither
// ciphers nor coordinate math: anagram search, ASCII and A1Z26
// conversions, text reversal and digit extraction.
package puzzle

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// maxPermutationLetters bounds brute-force permutation generation; beyond
// this a wordlist is required. 8 letters is already 40320 candidates.
const maxPermutationLetters = 8

// sortLetters returns the letters of s, spaces removed, in sorted order.
// Two strings are anagrams of each other exactly when their sorted forms
// match.
func sortLetters(s string) string {
	letters := []rune(strings.ReplaceAll(s, " ", ""))
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	return string(letters)
}

// Anagrams finds anagrams of letters. With a wordlist path it scans the
// list for words whose sorted letters match, showing progress on a
// terminal. Without one it generates all distinct permutations, which is
// only feasible for short inputs.
func Anagrams(letters, wordlistPath string) ([]string, error) {
	letters = strings.ToLower(strings.TrimSpace(letters))

	if wordlistPath == "" {
		return permutations(strings.ReplaceAll(letters, " ", ""))
	}

	return scanWordlist(letters, wordlistPath)
}

func scanWordlist(letters, path string) ([]string, error) {
	sorted := sortLetters(letters)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist: %w", err)
	}
	defer f.Close()

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		info, err := f.Stat()
		if err == nil {
			bar = progressbar.NewOptions64(info.Size(),
				progressbar.OptionSetDescription("Scanning wordlist"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowBytes(true),
				progressbar.OptionClearOnFinish(),
			)
		}
	}

	var results []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if bar != nil {
			_ = bar.Add(len(line) + 1)
		}

		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" {
			continue
		}

		if sortLetters(word) == sorted {
			results = append(results, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}

	return results, nil
}

// permutations returns every distinct ordering of the letters.
func permutations(letters string) ([]string, error) {
	runes := []rune(letters)
	if len(runes) > maxPermutationLetters {
		return nil, fmt.Errorf("%d letters is too long for permutation search (max %d); provide a wordlist",
			len(runes), maxPermutationLetters)
	}

	seen := make(map[string]struct{})

	var permute func(prefix []rune, rest []rune)
	permute = func(prefix []rune, rest []rune) {
		if len(rest) == 0 {
			seen[string(prefix)] = struct{}{}

			return
		}

		for i := range rest {
			next := make([]rune, 0, len(rest)-1)
			next = append(next, rest[:i]...)
			next = append(next, rest[i+1:]...)

			p := make([]rune, len(prefix)+1)
			copy(p, prefix)
			p[len(prefix)] = rest[i]

			permute(p, next)
		}
	}

	permute(nil, runes)

	results := make([]string, 0, len(seen))
	for word := range seen {
		results = append(results, word)
	}

	sort.Strings(results)

	return results, nil
}
