package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"yomiage/model"
	"yomiage/output"
)

type tokenList []model.Token

func (l tokenList) Text() string {
	var b strings.Builder
	for i, t := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.Surface + "\t" + t.Reading + "\t" + t.POS)
	}
	return b.String()
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <text>",
	Short: "Show how the analyzer splits and reads a line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAnalyzer(cfg)
		if err != nil {
			return err
		}
		toks, err := a.Analyze(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return output.Write(os.Stdout, format, tokenList(toks))
	},
}
