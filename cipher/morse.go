// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package cipher

import "strings"

// morseTable maps ITU Morse sequences to their characters.
var morseTable = map[string]string{
	".-": "A", "-...": "B", "-.-.": "C", "-..": "D", ".": "E",
	"..-.": "F", "--.": "G", "....": "H", "..": "I", ".---": "J",
	"-.-": "K", ".-..": "L", "--": "M", "-.": "N", "---": "O",
	".--.": "P", "--.-": "Q", ".-.": "R", "...": "S", "-": "T",
	"..-": "U", "...-": "V", ".--": "W", "-..-": "X", "-.--": "Y",
	"--..": "Z", ".----": "1", "..---": "2", "...--": "3", "....-": "4",
	".....": "5", "-....": "6", "--...": "7", "---..": "8", "----.": "9",
	"-----": "0", ".-.-.-": ".", "--..--": ",", "..--..": "?",
	".----.": "'", "-.-.--": "!", "-..-.": "/", "-.--.": "(", "-.--.-": ")",
	".-...": "&", "---...": ":", "-.-.-.": ";", "-...-": "=", ".-.-.": "+",
	"-....-": "-", "..--.-": "_", ".-..-.": "\"", "...-..-": "$",
	".--.-.": "@",
}

// Morse decodes Morse code with spaces between symbols and " / " between
// words. Unknown symbols decode to '?'.
func Morse(code string) string {
	var b strings.Builder

	words := strings.Split(strings.TrimSpace(code), " / ")
	for i, word := range words {
		if i > 0 {
			b.WriteByte(' ')
		}

		for _, symbol := range strings.Fields(word) {
			if ch, ok := morseTable[symbol]; ok {
				b.WriteString(ch)
			} else {
				b.WriteByte('?')
			}
		}
	}

	return strings.TrimSpace(b.String())
}
