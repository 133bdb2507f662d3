package dictionary

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"yomiage/kanji"
)

// ErrInvalidDictionary reports a dynamic dictionary file that exists but is
// not a JSON object of term -> reading strings.
var ErrInvalidDictionary = errors.New("invalid reading dictionary")

const readingSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {"type": "string"}
}`

var readingSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("reading-dictionary.json", bytes.NewReader([]byte(readingSchemaJSON))); err != nil {
		panic(fmt.Sprintf("load reading dictionary schema: %v", err))
	}
	schema, err := compiler.Compile("reading-dictionary.json")
	if err != nil {
		panic(fmt.Sprintf("compile reading dictionary schema: %v", err))
	}
	return schema
}

// ContentHash returns the key under which a document's dynamic dictionary
// is stored: the hex SHA-256 of the full document text.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Parse validates data as a reading dictionary and builds a Dictionary.
// Entries with an empty term, or a reading that is empty or not kana, are
// dropped with a warning.
func Parse(data []byte, logger *slog.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidDictionary, err)
	}
	if err := readingSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDictionary, err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidDictionary, err)
	}

	entries := make(map[string]string, len(raw))
	for term, reading := range raw {
		if term == "" || !isKanaReading(reading) {
			logger.Warn("skipping dictionary entry", "term", term, "reading", reading)
			continue
		}
		entries[term] = reading
	}
	return New(entries), nil
}

func isKanaReading(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !kanji.IsKana(r) && r != ' ' && r != '　' {
			return false
		}
	}
	return true
}

// Store keeps per-document dictionaries as <dir>/<content-hash>.json.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore returns a Store rooted at dir. An empty dir yields a Store that
// never finds anything.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Path returns the file a dictionary for hash is stored in.
func (s *Store) Path(hash string) string {
	return filepath.Join(s.dir, hash+".json")
}

// Load returns the dictionary stored for hash. A missing file, or a Store
// without a directory, gives an empty dictionary and no error.
func (s *Store) Load(hash string) (*Dictionary, error) {
	if s == nil || s.dir == "" {
		return New(nil), nil
	}
	if err := checkHash(hash); err != nil {
		return nil, err
	}
	path := s.Path(hash)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no dynamic dictionary", "path", path)
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	d, err := Parse(data, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Info("loaded dynamic dictionary", "path", path, "terms", d.Len())
	return d, nil
}

// Save writes entries for hash, replacing any existing file atomically.
func (s *Store) Save(hash string, entries map[string]string) error {
	if s.dir == "" {
		return errors.New("dictionary store has no directory")
	}
	if err := checkHash(hash); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	final := s.Path(hash)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func checkHash(hash string) error {
	if hash == "" || filepath.Base(hash) != hash || hash == "." || hash == ".." {
		return fmt.Errorf("invalid dictionary key %q", hash)
	}
	return nil
}
