// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

// Package cipher decodes the classical ciphers that show up in geocaching
// puzzle descriptions: Caesar/ROT-n, Vigenère, Atbash and Morse, plus a
// letter-frequency analyzer for attacking unknown substitutions.
package cipher

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Caesar decodes text encoded with a Caesar cipher by shifting letters
// back by shift positions. Case and non-letters are preserved. A shift of
// 13 decodes ROT13.
func Caesar(text string, shift int) string {
	var b strings.Builder
	b.Grow(len(text))

	// Normalize so negative and oversized shifts behave.
	shift = ((shift % 26) + 26) % 26

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'-rune(shift)+26)%26)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'-rune(shift)+26)%26)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ErrBadKey reports a Vigenère key with no usable letters.
var ErrBadKey = errors.New("vigenère key must contain at least one letter")

// foldKey lowercases the key and strips accents so that keys copied from
// cache listings ("clé", "São") work as their ASCII spelling.
func foldKey(key string) string {
	key, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.ToLower(strings.TrimSpace(key)),
	)

	var b strings.Builder
	for _, r := range key {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Vigenere decodes text encoded with a Vigenère cipher. The key advances
// only on letters; case and non-letters in the text are preserved.
func Vigenere(text, key string) (string, error) {
	key = foldKey(key)
	if key == "" {
		return "", ErrBadKey
	}

	var b strings.Builder
	b.Grow(len(text))

	j := 0
	for _, r := range text {
		var base rune
		switch {
		case r >= 'a' && r <= 'z':
			base = 'a'
		case r >= 'A' && r <= 'Z':
			base = 'A'
		default:
			b.WriteRune(r)

			continue
		}

		k := rune(key[j%len(key)]) - 'a'
		b.WriteRune(base + (r-base-k+26)%26)
		j++
	}

	return b.String(), nil
}

// Atbash applies the Atbash cipher (A↔Z, B↔Y, …). The transform is its
// own inverse.
func Atbash(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + 'z' - r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + 'Z' - r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Frequencies counts letter occurrences in text, case-folded to lower
// case. Non-letters are ignored.
func Frequencies(text string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			freq[r]++
		}
	}

	return freq
}
