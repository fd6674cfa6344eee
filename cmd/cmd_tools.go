// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spectraldecomp/gc-utils/puzzle"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "General puzzle-solving helpers",
}

var (
	wordlistPath   string
	asciiDirection string
	a1z26Direction string
	a1z26Offset    int
	wordsOnly      bool
)

// anagramDisplayLimit caps how many anagrams are printed before eliding.
const anagramDisplayLimit = 100

var anagramCmd = &cobra.Command{
	Use:   "anagram <letters>",
	Short: "Find anagrams of a set of letters",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := wordlistPath
		if path == "" {
			path = cfg.Wordlist
		}

		results, err := puzzle.Anagrams(args[0], path)
		if err != nil {
			return err
		}

		fmt.Printf("Found %d possible anagrams", len(results))

		if len(results) > anagramDisplayLimit {
			fmt.Printf(", showing first %d:\n", anagramDisplayLimit)

			for _, word := range results[:anagramDisplayLimit] {
				fmt.Println(word)
			}

			fmt.Printf("… and %d more\n", len(results)-anagramDisplayLimit)

			return nil
		}

		fmt.Println(":")

		for _, word := range results {
			fmt.Println(word)
		}

		return nil
	},
}

var asciiCmd = &cobra.Command{
	Use:   "ascii --direction to-text|from-text <input>",
	Short: "Convert between text and ASCII code points",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		switch asciiDirection {
		case "to-text":
			out, err := puzzle.ASCIIToText(args[0])
			if err != nil {
				return err
			}

			fmt.Println(out)
		case "from-text":
			fmt.Println(joinInts(puzzle.TextToASCII(args[0])))
		default:
			return fmt.Errorf("unknown direction %q (want to-text or from-text)", asciiDirection)
		}

		return nil
	},
}

var a1z26Cmd = &cobra.Command{
	Use:   "a1z26 --direction to-numbers|to-letters <input>",
	Short: "Convert between letters and A1Z26 numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		switch a1z26Direction {
		case "to-numbers":
			fmt.Println(joinInts(puzzle.LettersToNumbers(args[0], a1z26Offset)))
		case "to-letters":
			out, err := puzzle.NumbersToLetters(args[0], a1z26Offset)
			if err != nil {
				return err
			}

			fmt.Println(out)
		default:
			return fmt.Errorf("unknown direction %q (want to-numbers or to-letters)", a1z26Direction)
		}

		return nil
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <text>",
	Short: "Reverse a text, or just its word order",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if wordsOnly {
			fmt.Println(puzzle.ReverseWords(args[0]))
		} else {
			fmt.Println(puzzle.ReverseText(args[0]))
		}
	},
}

var numbersCmd = &cobra.Command{
	Use:   "numbers <text>",
	Short: "Extract every number hidden in a text",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		fmt.Println(joinInts(puzzle.ExtractNumbers(args[0])))
	},
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func init() {
	anagramCmd.Flags().StringVar(&wordlistPath, "wordlist", "", "path to a wordlist file")

	asciiCmd.Flags().StringVar(&asciiDirection, "direction", "", "to-text or from-text")
	_ = asciiCmd.MarkFlagRequired("direction")

	a1z26Cmd.Flags().StringVar(&a1z26Direction, "direction", "", "to-numbers or to-letters")
	a1z26Cmd.Flags().IntVar(&a1z26Offset, "offset", 0, "offset applied to the scheme (1 makes A=0)")
	_ = a1z26Cmd.MarkFlagRequired("direction")

	reverseCmd.Flags().BoolVar(&wordsOnly, "words-only", false, "reverse word order only")

	toolsCmd.AddCommand(anagramCmd)
	toolsCmd.AddCommand(asciiCmd)
	toolsCmd.AddCommand(a1z26Cmd)
	toolsCmd.AddCommand(reverseCmd)
	toolsCmd.AddCommand(numbersCmd)
	rootCmd.AddCommand(toolsCmd)
}
