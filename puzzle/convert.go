// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package puzzle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ASCIIToText converts space-separated ASCII code points to text.
func ASCIIToText(values string) (string, error) {
	var b strings.Builder

	for _, field := range strings.Fields(values) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return "", fmt.Errorf("could not parse %q as an ASCII value", field)
		}

		if n < 0 || n > 0x10FFFF {
			return "", fmt.Errorf("value %d is not a valid code point", n)
		}

		b.WriteRune(rune(n))
	}

	return b.String(), nil
}

// TextToASCII converts text to its code point values.
func TextToASCII(text string) []int {
	values := make([]int, 0, len(text))
	for _, r := range text {
		values = append(values, int(r))
	}

	return values
}

// NumbersToLetters converts space-separated numbers to letters using the
// A1Z26 scheme (A=1 … Z=26). offset shifts the scheme: offset 1 makes
// A=0. Values that fall outside the alphabet after adjustment are
// skipped.
func NumbersToLetters(values string, offset int) (string, error) {
	var b strings.Builder

	for _, field := range strings.Fields(values) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return "", fmt.Errorf("could not parse %q as a number", field)
		}

		adjusted := n - offset
		if adjusted >= 1 && adjusted <= 26 {
			b.WriteRune(rune('A' + adjusted - 1))
		}
	}

	return b.String(), nil
}

// LettersToNumbers converts letters to A1Z26 numbers, applying the same
// offset convention as NumbersToLetters. Non-letters are skipped.
func LettersToNumbers(text string, offset int) []int {
	var values []int

	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			values = append(values, int(r-'A')+1-offset)
		}
	}

	return values
}

// ReverseText reverses the characters of s.
func ReverseText(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ReverseWords reverses the order of whitespace-separated words, keeping
// the characters of each word intact.
func ReverseWords(s string) string {
	words := strings.Fields(s)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}

	return strings.Join(words, " ")
}

var digitRun = regexp.MustCompile(`\d+`)

// ExtractNumbers returns every run of digits in text as an integer, in
// order of appearance.
func ExtractNumbers(text string) []int {
	var values []int

	for _, m := range digitRun.FindAllString(text, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			// Digit runs longer than an int; skip like any other junk.
			continue
		}

		values = append(values, n)
	}

	return values
}
