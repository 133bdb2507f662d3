package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"yomiage/numeral"
	"yomiage/output"
)

var numberCounter string

type numberReading struct {
	Input   string `json:"input" yaml:"input"`
	Reading string `json:"reading" yaml:"reading"`
}

type numberReadings []numberReading

func (r numberReadings) Text() string {
	lines := make([]string, len(r))
	for i, n := range r {
		lines[i] = n.Input + "\t" + n.Reading
	}
	return strings.Join(lines, "\n")
}

var numberCmd = &cobra.Command{
	Use:   "number <n>...",
	Short: "Read numbers aloud, optionally with a counter",
	Long: `Print the kana reading of each number. Decimals are read with てん,
and --counter applies counter sound changes (3 + 本 -> さんぼん).

Examples:
  yomiage number 1234 0.5
  yomiage number --counter 本 1 3 6`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := make(numberReadings, 0, len(args))
		for _, arg := range args {
			reading, err := readNumber(arg, numberCounter)
			if err != nil {
				return err
			}
			out = append(out, numberReading{Input: arg, Reading: reading})
		}
		return output.Write(os.Stdout, format, out)
	},
}

func init() {
	numberCmd.Flags().StringVar(&numberCounter, "counter", "", "counter suffix, e.g. 本, 回, 年")
}

func readNumber(s, counter string) (string, error) {
	if strings.Contains(s, ".") {
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return "", fmt.Errorf("not a number: %q", s)
		}
		return numeral.ReadDecimal(s) + counter, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", fmt.Errorf("not a number: %q", s)
	}
	if counter != "" {
		return numeral.ReadCounter(n, counter), nil
	}
	return numeral.Reading(n), nil
}
