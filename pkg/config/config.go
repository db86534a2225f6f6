package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Extract   ExtractConfig   `yaml:"extract"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	LLM       LLMConfig       `yaml:"llm"`
	Translate TranslateConfig `yaml:"translate"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LYRICVOCAB_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LYRICVOCAB_LOG_FORMAT" env-default:"text"`
}

// Extraction sources.
const (
	SourceHeuristic = "heuristic"
	SourceLLM       = "llm"
	SourceCombined  = "combined"
)

// ExtractConfig holds the defaults for an extraction run.
type ExtractConfig struct {
	Level    string `yaml:"level"     env:"LYRICVOCAB_LEVEL"     env-default:"B1"`
	Source   string `yaml:"source"    env:"LYRICVOCAB_SOURCE"    env-default:"heuristic"`
	Stemming bool   `yaml:"stemming"  env:"LYRICVOCAB_STEMMING"  env-default:"false"`
	// MaxItems truncates the ranked list; 0 keeps everything.
	MaxItems int  `yaml:"max_items" env:"LYRICVOCAB_MAX_ITEMS" env-default:"0"`
	Trace    bool `yaml:"trace"     env:"LYRICVOCAB_TRACE"     env-default:"false"`
}

// LexiconConfig locates the optional frequency dataset.
type LexiconConfig struct {
	// DBPath enables the SQLite lexicon when set.
	DBPath  string `yaml:"db_path"  env:"LYRICVOCAB_LEXICON_DB"   env-default:""`
	CSVPath string `yaml:"csv_path" env:"LYRICVOCAB_LEXICON_CSV"  env-default:"data/ngsl.csv"`
	URL     string `yaml:"url"      env:"LYRICVOCAB_LEXICON_URL"  env-default:""`
	List    string `yaml:"list"     env:"LYRICVOCAB_LEXICON_LIST" env-default:"ngsl"`
}

// LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// LLMConfig holds settings for the text-generation collaborator.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LYRICVOCAB_LLM_PROVIDER"    env-default:"anthropic"`
	APIKey      string        `yaml:"api_key"     env:"LYRICVOCAB_LLM_API_KEY"`
	Model       string        `yaml:"model"       env:"LYRICVOCAB_LLM_MODEL"       env-default:"claude-sonnet-4-5"`
	BaseURL     string        `yaml:"base_url"    env:"LYRICVOCAB_LLM_BASE_URL"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LYRICVOCAB_LLM_MAX_TOKENS"  env-default:"2048"`
	Temperature float64       `yaml:"temperature" env:"LYRICVOCAB_LLM_TEMPERATURE" env-default:"0.2"`
	Timeout     time.Duration `yaml:"timeout"     env:"LYRICVOCAB_LLM_TIMEOUT"     env-default:"60s"`
}

// TranslateConfig holds translation settings. An empty Target disables translation.
type TranslateConfig struct {
	Target    string `yaml:"target"     env:"LYRICVOCAB_TRANSLATE_TARGET"`
	BatchSize int    `yaml:"batch_size" env:"LYRICVOCAB_TRANSLATE_BATCH"   env-default:"25"`
	Workers   int    `yaml:"workers"    env:"LYRICVOCAB_TRANSLATE_WORKERS" env-default:"4"`
}
