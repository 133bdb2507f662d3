package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"yomiage/dictionary"
	"yomiage/output"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage per-document reading dictionaries",
	Long: `Every document may have a reading dictionary stored as
<dictionary.dir>/<content-hash>.json, mapping terms to kana readings.
The hash is the SHA-256 of the document text, so editing the document
detaches it from its dictionary.`,
}

type dictInfo struct {
	Hash   string `json:"hash" yaml:"hash"`
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

func (d dictInfo) Text() string {
	state := "missing"
	if d.Exists {
		state = "present"
	}
	return fmt.Sprintf("%s\t%s\t%s", d.Hash, d.Path, state)
}

type dictEntry struct {
	Term    string `json:"term" yaml:"term"`
	Reading string `json:"reading" yaml:"reading"`
}

type dictEntries []dictEntry

func (e dictEntries) Text() string {
	lines := make([]string, len(e))
	for i, d := range e {
		lines[i] = d.Term + "\t" + d.Reading
	}
	return strings.Join(lines, "\n")
}

func entriesOf(d *dictionary.Dictionary) dictEntries {
	out := make(dictEntries, 0, d.Len())
	for _, term := range d.Terms() {
		reading, _ := d.Lookup(term)
		out = append(out, dictEntry{Term: term, Reading: reading})
	}
	return out
}

var dictHashCmd = &cobra.Command{
	Use:   "hash [document]",
	Short: "Print the content hash and dictionary path of a document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(argOrEmpty(args))
		if err != nil {
			return err
		}
		store := dictionary.NewStore(cfg.Dictionary.Dir, slog.Default())
		info := dictInfo{Hash: dictionary.ContentHash(text)}
		info.Path = store.Path(info.Hash)
		if _, err := os.Stat(info.Path); err == nil {
			info.Exists = true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return output.Write(os.Stdout, format, info)
	},
}

var dictShowCmd = &cobra.Command{
	Use:   "show [document]",
	Short: "List the dictionary entries for a document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(argOrEmpty(args))
		if err != nil {
			return err
		}
		store := dictionary.NewStore(cfg.Dictionary.Dir, slog.Default())
		d, err := store.Load(dictionary.ContentHash(text))
		if err != nil {
			return err
		}
		return output.Write(os.Stdout, format, entriesOf(d))
	},
}

var dictStaticCmd = &cobra.Command{
	Use:   "static",
	Short: "List the built-in term readings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Write(os.Stdout, format, entriesOf(dictionary.Static()))
	},
}

var dictImportCmd = &cobra.Command{
	Use:   "import <document> <entries.json>",
	Short: "Store a term -> reading JSON object as the document's dictionary",
	Long: `Validate a JSON object of term -> kana reading pairs and store it
under the document's content hash, replacing any existing dictionary.
Entries with an empty term or a non-kana reading are dropped with a warning.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		log := slog.Default()
		d, err := dictionary.Parse(data, log)
		if err != nil {
			return err
		}
		entries := make(map[string]string, d.Len())
		for _, term := range d.Terms() {
			entries[term], _ = d.Lookup(term)
		}
		store := dictionary.NewStore(cfg.Dictionary.Dir, log)
		hash := dictionary.ContentHash(text)
		if err := store.Save(hash, entries); err != nil {
			return err
		}
		log.Info("dictionary stored", "path", store.Path(hash), "terms", len(entries))
		return output.Write(os.Stdout, format, dictInfo{Hash: hash, Path: store.Path(hash), Exists: true})
	},
}

func init() {
	dictCmd.AddCommand(dictHashCmd, dictShowCmd, dictStaticCmd, dictImportCmd)
}
