package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Scanner   ScannerConfig   `mapstructure:"scanner"`
	Sentiment SentimentConfig `mapstructure:"sentiment"`
	Server    ServerConfig    `mapstructure:"server"`
}

type PipelineConfig struct {
	Normalize       bool `mapstructure:"normalize"`
	StripDiacritics bool `mapstructure:"strip_diacritics"`
	ASCIIMap        bool `mapstructure:"ascii_map"`
	SandhiSplit     bool `mapstructure:"sandhi_split"`
	MinPartLen      int  `mapstructure:"min_part_len"`
}

type ScannerConfig struct {
	Policy string `mapstructure:"policy"`
}

type SentimentConfig struct {
	LexiconPath   string `mapstructure:"lexicon_path"`
	LexiconURL    string `mapstructure:"lexicon_url"`
	LexiconSHA256 string `mapstructure:"lexicon_sha256"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Pipeline: PipelineConfig{
			Normalize:       true,
			StripDiacritics: false,
			ASCIIMap:        false,
			SandhiSplit:     false,
			MinPartLen:      2,
		},
		Scanner: ScannerConfig{
			Policy: PolicyUnicode,
		},
		Sentiment: SentimentConfig{
			LexiconPath:   "lexicons/vader_lexicon.txt",
			LexiconURL:    "",
			LexiconSHA256: "",
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: 10,
			MaxTextBytes:    1 << 20,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Bool("pipeline-normalize", defaults.Pipeline.Normalize, "Apply canonical (NFC) Unicode normalization")
	fs.Bool("pipeline-strip-diacritics", defaults.Pipeline.StripDiacritics, "Remove combining marks from IAST letters")
	fs.Bool("pipeline-ascii-map", defaults.Pipeline.ASCIIMap, "Map IAST letters to ASCII approximations")
	fs.Bool("pipeline-sandhi-split", defaults.Pipeline.SandhiSplit, "Split word tokens at heuristic sandhi boundaries")
	fs.Int("pipeline-min-part-len", defaults.Pipeline.MinPartLen, "Minimum rune length of each sandhi fragment")
	fs.String("scanner-policy", defaults.Scanner.Policy, "Word-character policy for the punctuation rule (unicode|ascii)")
	fs.String("sentiment-lexicon-path", defaults.Sentiment.LexiconPath, "Path to the sentiment lexicon file")
	fs.String("sentiment-lexicon-url", defaults.Sentiment.LexiconURL, "Download URL used when the lexicon is missing")
	fs.String("sentiment-lexicon-sha256", defaults.Sentiment.LexiconSHA256, "Pinned sha256 checksum for the lexicon")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("SANSKRITOK")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("sanskritok")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if _, err := ParsePolicy(cfg.Scanner.Policy); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("pipeline.normalize", c.Pipeline.Normalize)
	v.SetDefault("pipeline.strip_diacritics", c.Pipeline.StripDiacritics)
	v.SetDefault("pipeline.ascii_map", c.Pipeline.ASCIIMap)
	v.SetDefault("pipeline.sandhi_split", c.Pipeline.SandhiSplit)
	v.SetDefault("pipeline.min_part_len", c.Pipeline.MinPartLen)
	v.SetDefault("scanner.policy", c.Scanner.Policy)
	v.SetDefault("sentiment.lexicon_path", c.Sentiment.LexiconPath)
	v.SetDefault("sentiment.lexicon_url", c.Sentiment.LexiconURL)
	v.SetDefault("sentiment.lexicon_sha256", c.Sentiment.LexiconSHA256)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
}

// flagKeys maps each dotted config key to the command-line flag that feeds
// it. Every flag must bind to the dotted key the struct tags expect so that
// defaults, config file, env, and flags all resolve through the same key.
var flagKeys = map[string]string{
	"log_level":                 "log-level",
	"pipeline.normalize":        "pipeline-normalize",
	"pipeline.strip_diacritics": "pipeline-strip-diacritics",
	"pipeline.ascii_map":        "pipeline-ascii-map",
	"pipeline.sandhi_split":     "pipeline-sandhi-split",
	"pipeline.min_part_len":     "pipeline-min-part-len",
	"scanner.policy":            "scanner-policy",
	"sentiment.lexicon_path":    "sentiment-lexicon-path",
	"sentiment.lexicon_url":     "sentiment-lexicon-url",
	"sentiment.lexicon_sha256":  "sentiment-lexicon-sha256",
	"server.listen_addr":        "server-listen-addr",
	"server.shutdown_timeout":   "server-shutdown-timeout",
	"server.max_text_bytes":     "server-max-text-bytes",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
