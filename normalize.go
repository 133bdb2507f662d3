package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"yomiage/dictionary"
	"yomiage/ingest"
	"yomiage/model"
	"yomiage/output"
	"yomiage/pipeline"
)

var (
	normalizeRaw          bool
	normalizeStripMarkers bool
	normalizeOut          string
)

// normalized is the result of normalizing one document.
type normalized struct {
	Document string         `json:"document" yaml:"document"`
	Hash     string         `json:"hash" yaml:"hash"`
	Results  []model.Result `json:"results" yaml:"results"`

	stripMarkers bool
}

// Text joins the readings one segment per line.
func (n normalized) Text() string {
	lines := make([]string, 0, len(n.Results))
	for _, r := range n.Results {
		reading := r.Reading
		if n.stripMarkers {
			reading = strings.ReplaceAll(reading, model.HeadingMarkerString, "")
		}
		lines = append(lines, reading)
	}
	return strings.Join(lines, "\n")
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize a document into its reading",
	Long: `Normalize a Markdown or plain text document and print the reading of
every segment in order. The document is read from stdin when no file is
given or the file is "-".

Headings are kept with a leading U+E000 marker so downstream tools can
place chapter pauses; --strip-markers removes it.

Examples:
  yomiage normalize book.md
  yomiage normalize -o json book.md > book.json
  echo "第3章の図2.1を参照" | yomiage normalize --raw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(cfg)
		if err != nil {
			return err
		}
		return normalizeFile(cmd.Context(), p, argOrEmpty(args))
	},
}

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeRaw, "raw", false, "normalize the input as a single segment")
	normalizeCmd.Flags().BoolVar(&normalizeStripMarkers, "strip-markers", false, "remove heading markers from text output")
	normalizeCmd.Flags().StringVar(&normalizeOut, "out", "", "write to this file instead of stdout")
}

func normalizeFile(ctx context.Context, p *pipeline.Pipeline, name string) error {
	text, err := readInput(name)
	if err != nil {
		return err
	}
	res, err := normalizeText(ctx, p, text)
	if err != nil {
		return err
	}
	if normalizeOut == "" {
		return output.Write(os.Stdout, format, res)
	}
	f, err := os.Create(normalizeOut)
	if err != nil {
		return err
	}
	if err := output.Write(f, format, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func normalizeText(ctx context.Context, p *pipeline.Pipeline, text string) (normalized, error) {
	res := normalized{Hash: dictionary.ContentHash(text), stripMarkers: normalizeStripMarkers}
	if normalizeRaw {
		dynamic, err := p.LoadDictionary(text)
		if err != nil {
			return res, err
		}
		reading, err := p.Normalize(ctx, text, dynamic)
		if err != nil {
			return res, err
		}
		res.Results = []model.Result{{Segment: model.Segment{Text: text}, Reading: reading}}
		return res, nil
	}
	doc, err := ingest.Split(text)
	if err != nil {
		return res, err
	}
	res.Document = doc.ID
	if res.Results, err = p.NormalizeDocument(ctx, doc); err != nil {
		return res, fmt.Errorf("document %s: %w", doc.ID, err)
	}
	return res, nil
}
