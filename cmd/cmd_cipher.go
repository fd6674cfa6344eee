// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spectraldecomp/gc-utils/cipher"
)

var cipherCmd = &cobra.Command{
	Use:   "cipher",
	Short: "Decode classical ciphers",
}

var (
	caesarShift int
	vigenereKey string
	freqGuess   bool
)

var caesarCmd = &cobra.Command{
	Use:   "caesar <text>",
	Short: "Decode a Caesar cipher (default shift 13, i.e. ROT13)",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		fmt.Println(cipher.Caesar(args[0], caesarShift))
	},
}

var vigenereCmd = &cobra.Command{
	Use:   "vigenere --key <key> <text>",
	Short: "Decode a Vigenère cipher",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		out, err := cipher.Vigenere(args[0], vigenereKey)
		if err != nil {
			return err
		}

		fmt.Println(out)

		return nil
	},
}

var atbashCmd = &cobra.Command{
	Use:   "atbash <text>",
	Short: "Apply the Atbash cipher (A↔Z)",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		fmt.Println(cipher.Atbash(args[0]))
	},
}

var morseCmd = &cobra.Command{
	Use:   "morse <code>",
	Short: "Decode Morse code (symbols space-separated, words split by ' / ')",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		fmt.Println(cipher.Morse(args[0]))
	},
}

var frequencyCmd = &cobra.Command{
	Use:   "frequency <text>",
	Short: "Letter-frequency analysis, optionally with a substitution guess",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		freq := cipher.Frequencies(args[0])

		letters := make([]rune, 0, len(freq))
		for r := range freq {
			letters = append(letters, r)
		}

		sort.Slice(letters, func(i, j int) bool {
			if freq[letters[i]] != freq[letters[j]] {
				return freq[letters[i]] > freq[letters[j]]
			}

			return letters[i] < letters[j]
		})

		var parts []string
		for _, r := range letters {
			parts = append(parts, fmt.Sprintf("%c=%d", r, freq[r]))
		}

		fmt.Println(strings.Join(parts, " "))

		if freqGuess {
			fmt.Println(cipher.SubstitutionGuess(args[0], nil))
		}
	},
}

func init() {
	caesarCmd.Flags().IntVar(&caesarShift, "shift", 13, "shift applied during encoding")

	vigenereCmd.Flags().StringVar(&vigenereKey, "key", "", "cipher key")
	_ = vigenereCmd.MarkFlagRequired("key")

	frequencyCmd.Flags().BoolVar(&freqGuess, "guess", false, "print a frequency-based substitution guess")

	cipherCmd.AddCommand(caesarCmd)
	cipherCmd.AddCommand(vigenereCmd)
	cipherCmd.AddCommand(atbashCmd)
	cipherCmd.AddCommand(morseCmd)
	cipherCmd.AddCommand(frequencyCmd)
	rootCmd.AddCommand(cipherCmd)
}
