package config

// Config is the full yomiage configuration.
type Config struct {
	Punctuation PunctuationCfg `mapstructure:"punctuation" yaml:"punctuation"`
	Analyzer    AnalyzerCfg    `mapstructure:"analyzer" yaml:"analyzer"`
	Dictionary  DictionaryCfg  `mapstructure:"dictionary" yaml:"dictionary"`
	Pipeline    PipelineCfg    `mapstructure:"pipeline" yaml:"pipeline"`
	Log         LogCfg         `mapstructure:"log" yaml:"log"`
}

// PunctuationCfg tunes pause insertion.
type PunctuationCfg struct {
	MinPhraseRun int `mapstructure:"min_phrase_run" yaml:"min_phrase_run"` // run before a connector
	MinTopicRun  int `mapstructure:"min_topic_run" yaml:"min_topic_run"`   // run before a topic は
}

// AnalyzerCfg selects the morphological analyzer setup.
type AnalyzerCfg struct {
	Dict     string `mapstructure:"dict" yaml:"dict"`         // "ipa" or "uni"
	Mode     string `mapstructure:"mode" yaml:"mode"`         // "normal", "search", "extended"
	Kanjidic string `mapstructure:"kanjidic" yaml:"kanjidic"` // optional kanjidic2.xml for unresolved kanji
}

// DictionaryCfg locates per-document reading dictionaries.
type DictionaryCfg struct {
	Dir string `mapstructure:"dir" yaml:"dir"` // holds <content-hash>.json
}

// PipelineCfg controls document processing.
type PipelineCfg struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LogCfg configures logging and stage traces.
type LogCfg struct {
	Level    string `mapstructure:"level" yaml:"level"`
	Format   string `mapstructure:"format" yaml:"format"`
	TraceDir string `mapstructure:"trace_dir" yaml:"trace_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Punctuation: PunctuationCfg{MinPhraseRun: 8, MinTopicRun: 8},
		Analyzer:    AnalyzerCfg{Dict: "ipa", Mode: "normal"},
		Dictionary:  DictionaryCfg{Dir: "dictionaries"},
		Pipeline:    PipelineCfg{Workers: 4},
		Log:         LogCfg{Level: "info", Format: "text"},
	}
}
